// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/codecoder-dev/codecoder/ent/actionnode"
	"github.com/codecoder-dev/codecoder/ent/causaledge"
	"github.com/codecoder-dev/codecoder/ent/decisionnode"
	"github.com/codecoder-dev/codecoder/ent/outcomenode"
	"github.com/codecoder-dev/codecoder/ent/permissionrequest"
	"github.com/codecoder-dev/codecoder/ent/schema"
	"github.com/codecoder-dev/codecoder/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	actionnodeFields := schema.ActionNode{}.Fields()
	_ = actionnodeFields
	// actionnodeDescTimestamp is the schema descriptor for timestamp field.
	actionnodeDescTimestamp := actionnodeFields[6].Descriptor()
	// actionnode.DefaultTimestamp holds the default value on creation for the timestamp field.
	actionnode.DefaultTimestamp = actionnodeDescTimestamp.Default.(func() time.Time)
	causaledgeFields := schema.CausalEdge{}.Fields()
	_ = causaledgeFields
	// causaledgeDescWeight is the schema descriptor for weight field.
	causaledgeDescWeight := causaledgeFields[4].Descriptor()
	// causaledge.DefaultWeight holds the default value on creation for the weight field.
	causaledge.DefaultWeight = causaledgeDescWeight.Default.(float64)
	decisionnodeFields := schema.DecisionNode{}.Fields()
	_ = decisionnodeFields
	// decisionnodeDescConfidence is the schema descriptor for confidence field.
	decisionnodeDescConfidence := decisionnodeFields[5].Descriptor()
	// decisionnode.DefaultConfidence holds the default value on creation for the confidence field.
	decisionnode.DefaultConfidence = decisionnodeDescConfidence.Default.(float64)
	// decisionnodeDescTimestamp is the schema descriptor for timestamp field.
	decisionnodeDescTimestamp := decisionnodeFields[6].Descriptor()
	// decisionnode.DefaultTimestamp holds the default value on creation for the timestamp field.
	decisionnode.DefaultTimestamp = decisionnodeDescTimestamp.Default.(func() time.Time)
	outcomenodeFields := schema.OutcomeNode{}.Fields()
	_ = outcomenodeFields
	// outcomenodeDescTimestamp is the schema descriptor for timestamp field.
	outcomenodeDescTimestamp := outcomenodeFields[6].Descriptor()
	// outcomenode.DefaultTimestamp holds the default value on creation for the timestamp field.
	outcomenode.DefaultTimestamp = outcomenodeDescTimestamp.Default.(func() time.Time)
	permissionrequestFields := schema.PermissionRequest{}.Fields()
	_ = permissionrequestFields
	// permissionrequestDescCreatedAt is the schema descriptor for created_at field.
	permissionrequestDescCreatedAt := permissionrequestFields[7].Descriptor()
	// permissionrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	permissionrequest.DefaultCreatedAt = permissionrequestDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[7].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[8].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
}
