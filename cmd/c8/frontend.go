package main

// Framebuffer is the part of the machine a front end renders from.
type Framebuffer interface {
	ReadDisplay(x, y int, buf []byte) int
	Dirty() bool
	Sounding() bool
}

// Frontend presents the machine to the user and feeds it input.
type Frontend interface {
	// Run drives the controller until the user quits.
	Run() error
}
