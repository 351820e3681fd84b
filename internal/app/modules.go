package app

import (
	"github.com/vk/strgraphgo/internal/op"
	"github.com/vk/strgraphgo/modules/coreops"
	"github.com/vk/strgraphgo/modules/listops"
	"github.com/vk/strgraphgo/modules/textops"
)

// coreModules is the definitive list of operation packs compiled into the
// strgraphgo binary.
var coreModules = []op.Module{
	&coreops.Module{},
	&textops.Module{},
	&listops.Module{},
}

// RegisterDefaults populates a registry with every built-in operation in
// one call.
func RegisterDefaults(r *op.Registry) {
	for _, mod := range coreModules {
		mod.Register(r)
	}
}
