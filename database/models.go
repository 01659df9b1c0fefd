package database

import "homifyhub_server/structs/tables"

// registerJoinModels registers the many-to-many join tables bun needs to know
// about before relations over them can be queried.
func (db *DB) registerJoinModels() {
	db.RegisterModel(
		(*tables.ProductCategory)(nil),
		(*tables.ProductTag)(nil),
		(*tables.BundleProduct)(nil),
	)
}
