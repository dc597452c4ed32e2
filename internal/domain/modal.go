package domain

type ModalState int

const (
	ModalHidden ModalState = iota
	ModalVisible
)

type ModalEvent int

const (
	ModalOpen ModalEvent = iota
	ModalClose
	ModalBackdropClick
)

func (s ModalState) String() string {
	if s == ModalVisible {
		return "visible"
	}
	return "hidden"
}

// Next applies a UI event to the cart modal. Opening always shows it; the
// close button and a click on the backdrop always hide it.
func (s ModalState) Next(ev ModalEvent) ModalState {
	switch ev {
	case ModalOpen:
		return ModalVisible
	case ModalClose, ModalBackdropClick:
		return ModalHidden
	}
	return s
}
