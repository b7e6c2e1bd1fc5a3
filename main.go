package main

import "os"

func main() {
	prog := progName(os.Args)
	d := NewDriver(prog, os.Stdout, os.Stderr)

	inputs, code, done := d.ParseArgs(os.Args[1:])
	if done {
		os.Exit(code)
	}
	os.Exit(d.Run(inputs))
}
