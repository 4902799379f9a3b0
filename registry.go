package iotago

import (
	"github.com/iotaledger/hive.go/serializer/v2/serix"
)

// mustRegisterInterfaceObjects registers every concrete implementation of iface with api, assigning each one its
// serix object type code in declaration order (0-indexed), and panics if registration fails: a programmer error at
// package init time, not a runtime condition.
func mustRegisterInterfaceObjects(api *serix.API, iface interface{}, objs ...interface{}) {
	for i, obj := range objs {
		if err := api.RegisterTypeSettings(obj, serix.TypeSettings{}.WithObjectType(uint32(i))); err != nil {
			panic(err)
		}
	}

	if err := api.RegisterInterfaceObjects(iface, objs...); err != nil {
		panic(err)
	}
}
