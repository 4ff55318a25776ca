package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData holds the resolv objects standing in for a body's shapes, one
// per shape and in the same order.
type ObjectData struct {
	Objects []*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
