package domain

import "fmt"

type NoticeKind string

const (
	NoticeCartAdded   NoticeKind = "cart_added"
	NoticeCartCleared NoticeKind = "cart_cleared"
)

// Notice is a non-blocking toast shown after a cart change.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

func CartAddedNotice(p Product) Notice {
	return Notice{Kind: NoticeCartAdded, Message: fmt.Sprintf("%s has been added to the cart.", p.Name)}
}

func CartClearedNotice() Notice {
	return Notice{Kind: NoticeCartCleared, Message: "The cart has been emptied."}
}
