package catalog

import "github.com/grindlemire/graft"

// NodeID is the unique identifier of the Graft node providing the *Catalog.
// The node itself is registered by the package that owns the component types.
const NodeID graft.ID = "adapter.catalog"
