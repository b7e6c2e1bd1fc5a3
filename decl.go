package main

// compileTop is the top-level declaration dispatcher: repeatedly read an
// identifier, emit its .globl, and dispatch on the next non-blank byte to
// the function or global producer. The loop ends cleanly at end of file;
// any non-whitespace byte left over after that is fatal.
func (c *Compiler) compileTop() {
	for {
		id := c.scanIdent()
		if id == "" {
			break
		}
		c.emit(".globl %s", id)
		c.logf(".", "declare %s", id)

		c.skipSpace()
		b, ok := c.readByte()
		if !ok {
			c.fatalf("unexpected end of file after declaration of %q", id)
		}

		switch b {
		case '(':
			c.compileFunction(id)
		case '[':
			c.compileGlobal(id, true)
		default:
			c.unread(b)
			c.compileGlobal(id, false)
		}
	}

	c.skipSpace()
	if b, ok := c.readByte(); ok {
		c.unread(b)
		c.fatalf("expect identifier at top level")
	}
}
