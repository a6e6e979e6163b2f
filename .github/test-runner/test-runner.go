// test-runner runs the tests once for every assertion policy build tag and
// scans the output for failed packages. The exit code will be 0 if all runs
// passed, otherwise 1.
package main

import (
	"bufio"
	"log"
	"os"
	"os/exec"
	"strings"
)

var policies = []string{
	"",
	"estd_assert_all",
	"estd_assert_nofileline",
	"estd_assert_nomessage",
	"estd_noassert",
}

func main() {
	log.Default().SetFlags(0)

	pkgs := os.Args[1:]
	if len(pkgs) == 0 {
		pkgs = []string{"./..."}
	}

	code := 0
	for _, tag := range policies {
		if !run(tag, pkgs) {
			code = 1
		}
	}
	os.Exit(code)
}

func run(tag string, pkgs []string) bool {
	name := tag
	if name == "" {
		name = "default"
	}
	args := append([]string{"test", "-count=1", "-tags=" + tag}, pkgs...)
	cmd := exec.Command("go", args...)
	cmd.Stderr = os.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		log.Fatal("open stdout:", err)
	}

	err = cmd.Start()
	if err != nil {
		log.Fatal("start command:", err)
	}

	passed := true
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := scanner.Text()
		log.Printf("[%s] %s", name, line)
		switch {
		case strings.HasPrefix(line, "panic:"), strings.HasPrefix(line, "FAIL"):
			passed = false
		}
	}
	if err := cmd.Wait(); err != nil {
		passed = false
	}
	log.Printf("[%s] passed=%v", name, passed)
	return passed
}
