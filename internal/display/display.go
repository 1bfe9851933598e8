package display

// Display renders an image until the user closes it.
type Display interface {
	Run() error
	Close()
}

// Options configures a Viewer.
type Options struct {
	Title        string
	WindowWidth  int
	WindowHeight int
	Scale        int // 0 fits the image to the window
	Flip         bool
}
