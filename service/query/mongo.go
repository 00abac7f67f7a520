package query

/*
	Description:
		Package `query` provides interface for querying mongo db
		This pachage is basicly nothing but wrap https://github.com/mongodb/mongo-go-driver
		so please read document at following link for any detail
		https://godoc.org/go.mongodb.org/mongo-driver/mongo

	Use Case:
		Please Read the testcases for usage of each method
*/

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")

	// ErrCollScan is error for unindexed query
	ErrCollScan = fmt.Errorf("COLLSCAN is not allowed")
)

type patchOp struct {
	patchMany bool
}

// PatchOp is an alias for functional argument
type PatchOp func(*patchOp)

// WithPatchMany specifies patchMany setting. To patch all entries selected, set patchMany = true.
func WithPatchMany(patchMany bool) PatchOp {
	return func(o *patchOp) {
		o.patchMany = patchMany
	}
}

//Mongo abstract the mongo layer.
type Mongo interface {
	// Insert inserts a new document to the table
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne get data from the table
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Count return counting for matched entry in the table
	// https://docs.mongodb.com/manual/reference/method/db.collection.countDocuments
	Count(context ctx.Ctx, table domain.Table, selector interface{}) (n int, err error)

	// Upsert update an entry , if the selector is already exist.
	// Upsert insert an entry , if the selector is not exist.
	Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Remove remove an entry from the table
	// Return ErrNotFound if selector does not match any documents
	Remove(context ctx.Ctx, table domain.Table, selector interface{}) error

	//RemoveAll remove all entries matching the selector from the table
	RemoveAll(context ctx.Ctx, table domain.Table, selector interface{}) (removedCnt int64, err error)

	// Patch patch an entry, if the selector not exist, return err.
	// To patch all entries selected, set WithPatchMany(true).
	// Return ErrNotFound if selector does not match any documents
	Patch(context ctx.Ctx, table domain.Table, selector, update interface{}, ops ...PatchOp) error

	// CustomPatch patch an entry with customized mongo query
	// Return ErrNotFound if upsert is false and selector does not match any documents,
	CustomPatch(context ctx.Ctx, table domain.Table, selector, update bson.M, upsert bool) error

	// Pull pull all `item` out from `field` according `query`
	Pull(context ctx.Ctx, table domain.Table, query, result interface{}, field string, item interface{}) error
}
