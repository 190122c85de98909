package ui

// Notice is the blocking error dialog. While it is visible the model ignores
// every input except dismissal.
type Notice struct {
	Title   string
	Message string
	visible bool
	shown   int
}

func NewNotice() *Notice {
	return &Notice{}
}

func (n *Notice) Notify(title, message string) {
	n.Title = title
	n.Message = message
	n.visible = true
	n.shown++
}

func (n *Notice) Visible() bool {
	return n.visible
}

func (n *Notice) Dismiss() {
	n.visible = false
}

// Count returns how many notifications were raised this session.
func (n *Notice) Count() int {
	return n.shown
}
