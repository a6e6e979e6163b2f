package debug

// Policy selects which context a failed assertion passes to the handler.
type Policy uint8

const (
	PolicyAll        Policy = iota // file, line and test
	PolicyNoFile                   // line and test
	PolicyNoFileLine               // test only
	PolicyNoMessage                // nothing
	PolicyDisabled                 // assertions are not evaluated
)

var policyNames = [...]string{
	PolicyAll:        "all",
	PolicyNoFile:     "nofile",
	PolicyNoFileLine: "nofileline",
	PolicyNoMessage:  "nomessage",
	PolicyDisabled:   "disabled",
}

func (p Policy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return "unknown"
}

func (p Policy) reportsFile() bool { return p == PolicyAll }
func (p Policy) reportsLine() bool { return p <= PolicyNoFile }
func (p Policy) reportsTest() bool { return p <= PolicyNoFileLine }
