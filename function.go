package main

// compileFunction emits a function declaration. The opening '(' has
// already been consumed by the caller (the declaration dispatcher);
// parameter lists are not supported, so the next non-blank byte must be
// ')'.
func (c *Compiler) compileFunction(id string) {
	c.skipSpace()
	b, ok := c.readByte()
	if !ok || b != ')' {
		c.fatalf("expected ')' in function declaration of %q", id)
	}

	c.emit(".text")
	c.emit(".type %s, @function", id)
	c.emit("%s:", id)
	c.emit("push %%rbp")
	c.emit("mov %%rsp, %%rbp")
	c.logf(".", "function %s", id)

	c.compileStmt(id, nil)

	c.emit(".L.return.%s:", id)
	c.emit("mov %%rbp, %%rsp")
	c.emit("pop %%rbp")
	c.emit("ret")
}
