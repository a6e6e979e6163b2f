//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strconv"
	"strings"
	"text/template"
)

var constructTemplate = `
// Construct{{ .N }} initializes the slot of c in place by passing it to fn
// together with {{ .Count }}. It returns the slot.
func Construct{{ .N }}[T, {{ .TypeParams }} any](c Constructor[T], fn func(*T, {{ .Types }}), {{ .Params }}) *T {
	fn(c.slot, {{ .Args }})
	return c.slot
}
`

type arity struct {
	N                                      int
	Count, TypeParams, Types, Params, Args string
}

func fromArity(n int) (a arity) {
	var types, params, args []string
	for i := 1; i <= n; i++ {
		s := strconv.Itoa(i)
		types = append(types, "A"+s)
		params = append(params, "a"+s+" A"+s)
		args = append(args, "a"+s)
	}
	a.N = n
	a.Count = "one argument"
	if n > 1 {
		a.Count = strconv.Itoa(n) + " arguments"
	}
	a.TypeParams = strings.Join(types, ", ")
	a.Types = a.TypeParams
	a.Params = strings.Join(params, ", ")
	a.Args = strings.Join(args, ", ")
	return
}

func usage() {
	fmt.Printf("Usage: %v <max arity>\n", os.Args[0])
}

func main() {
	log.Default().SetFlags(log.Lshortfile)
	if len(os.Args) != 2 {
		usage()
		os.Exit(1)
	}
	max, err := strconv.Atoi(os.Args[1])
	if err != nil || max < 1 {
		usage()
		os.Exit(1)
	}

	source := bytes.NewBuffer(nil)
	tmpl, err := template.New("constructTemplate").Parse(constructTemplate)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Fprintln(source, "package vector")

	for n := 1; n <= max; n++ {
		err = tmpl.Execute(source, fromArity(n))
		if err != nil {
			log.Fatalln(err)
		}
	}

	formattedSource, err := format.Source(source.Bytes())
	if err != nil {
		log.Fatalln(err)
	}
	err = os.WriteFile("construct_gen.go", formattedSource, 0644)
	if err != nil {
		log.Fatalln(err)
	}
}
