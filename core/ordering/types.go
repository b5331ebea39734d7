package ordering

// Relation is one ordered membership of a child within a parent's
// collection. Index is zero-based and unique per parent.
type Relation struct {
	Parent string `json:"parent"`
	Child  string `json:"child"`
	Index  int    `json:"index"`
}

// Entry is one element of a client-declared ordering. Entries may arrive in
// any order; the reconciler sorts them by Index before applying.
type Entry struct {
	Index int    `json:"index"`
	Child string `json:"id"`
}

// ReplaceOptions controls ReplaceAll behavior.
type ReplaceOptions struct {
	// ConfirmEmpty allows a replace with zero entries to detach every child
	// of the parent. Without it an empty replace is rejected with
	// KindEmptyReplace; this guards against client bugs that submit an
	// empty order by accident.
	ConfirmEmpty bool
}

// RelationSpec maps a relation kind onto its physical table and columns.
// The reconciler and store are generic; the RelationSpec pins the schema,
// one table per relation kind.
type RelationSpec struct {
	// Kind is the stable name of the relation kind (e.g. "topic-sections").
	Kind string
	// Table is the backing table. It must carry unique indexes over
	// (ParentColumn, ChildColumn) and (ParentColumn, IndexColumn).
	Table string
	// ParentColumn, ChildColumn and IndexColumn name the mapped columns.
	ParentColumn string
	ChildColumn  string
	IndexColumn  string
}
