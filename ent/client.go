// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/codecoder-dev/codecoder/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/codecoder-dev/codecoder/ent/actionnode"
	"github.com/codecoder-dev/codecoder/ent/causaledge"
	"github.com/codecoder-dev/codecoder/ent/decisionnode"
	"github.com/codecoder-dev/codecoder/ent/outcomenode"
	"github.com/codecoder-dev/codecoder/ent/permissionrequest"
	"github.com/codecoder-dev/codecoder/ent/task"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ActionNode is the client for interacting with the ActionNode builders.
	ActionNode *ActionNodeClient
	// CausalEdge is the client for interacting with the CausalEdge builders.
	CausalEdge *CausalEdgeClient
	// DecisionNode is the client for interacting with the DecisionNode builders.
	DecisionNode *DecisionNodeClient
	// OutcomeNode is the client for interacting with the OutcomeNode builders.
	OutcomeNode *OutcomeNodeClient
	// PermissionRequest is the client for interacting with the PermissionRequest builders.
	PermissionRequest *PermissionRequestClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ActionNode = NewActionNodeClient(c.config)
	c.CausalEdge = NewCausalEdgeClient(c.config)
	c.DecisionNode = NewDecisionNodeClient(c.config)
	c.OutcomeNode = NewOutcomeNodeClient(c.config)
	c.PermissionRequest = NewPermissionRequestClient(c.config)
	c.Task = NewTaskClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		ActionNode:        NewActionNodeClient(cfg),
		CausalEdge:        NewCausalEdgeClient(cfg),
		DecisionNode:      NewDecisionNodeClient(cfg),
		OutcomeNode:       NewOutcomeNodeClient(cfg),
		PermissionRequest: NewPermissionRequestClient(cfg),
		Task:              NewTaskClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		ActionNode:        NewActionNodeClient(cfg),
		CausalEdge:        NewCausalEdgeClient(cfg),
		DecisionNode:      NewDecisionNodeClient(cfg),
		OutcomeNode:       NewOutcomeNodeClient(cfg),
		PermissionRequest: NewPermissionRequestClient(cfg),
		Task:              NewTaskClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ActionNode.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.ActionNode, c.CausalEdge, c.DecisionNode, c.OutcomeNode, c.PermissionRequest,
		c.Task,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ActionNode, c.CausalEdge, c.DecisionNode, c.OutcomeNode, c.PermissionRequest,
		c.Task,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActionNodeMutation:
		return c.ActionNode.mutate(ctx, m)
	case *CausalEdgeMutation:
		return c.CausalEdge.mutate(ctx, m)
	case *DecisionNodeMutation:
		return c.DecisionNode.mutate(ctx, m)
	case *OutcomeNodeMutation:
		return c.OutcomeNode.mutate(ctx, m)
	case *PermissionRequestMutation:
		return c.PermissionRequest.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ActionNodeClient is a client for the ActionNode schema.
type ActionNodeClient struct {
	config
}

// NewActionNodeClient returns a client for the ActionNode from the given config.
func NewActionNodeClient(c config) *ActionNodeClient {
	return &ActionNodeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `actionnode.Hooks(f(g(h())))`.
func (c *ActionNodeClient) Use(hooks ...Hook) {
	c.hooks.ActionNode = append(c.hooks.ActionNode, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `actionnode.Intercept(f(g(h())))`.
func (c *ActionNodeClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActionNode = append(c.inters.ActionNode, interceptors...)
}

// Create returns a builder for creating a ActionNode entity.
func (c *ActionNodeClient) Create() *ActionNodeCreate {
	mutation := newActionNodeMutation(c.config, OpCreate)
	return &ActionNodeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActionNode entities.
func (c *ActionNodeClient) CreateBulk(builders ...*ActionNodeCreate) *ActionNodeCreateBulk {
	return &ActionNodeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActionNodeClient) MapCreateBulk(slice any, setFunc func(*ActionNodeCreate, int)) *ActionNodeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActionNodeCreateBulk{err: fmt.Errorf("calling to ActionNodeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActionNodeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActionNodeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActionNode.
func (c *ActionNodeClient) Update() *ActionNodeUpdate {
	mutation := newActionNodeMutation(c.config, OpUpdate)
	return &ActionNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActionNodeClient) UpdateOne(_m *ActionNode) *ActionNodeUpdateOne {
	mutation := newActionNodeMutation(c.config, OpUpdateOne, withActionNode(_m))
	return &ActionNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActionNodeClient) UpdateOneID(id string) *ActionNodeUpdateOne {
	mutation := newActionNodeMutation(c.config, OpUpdateOne, withActionNodeID(id))
	return &ActionNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActionNode.
func (c *ActionNodeClient) Delete() *ActionNodeDelete {
	mutation := newActionNodeMutation(c.config, OpDelete)
	return &ActionNodeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActionNodeClient) DeleteOne(_m *ActionNode) *ActionNodeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActionNodeClient) DeleteOneID(id string) *ActionNodeDeleteOne {
	builder := c.Delete().Where(actionnode.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActionNodeDeleteOne{builder}
}

// Query returns a query builder for ActionNode.
func (c *ActionNodeClient) Query() *ActionNodeQuery {
	return &ActionNodeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActionNode},
		inters: c.Interceptors(),
	}
}

// Get returns a ActionNode entity by its id.
func (c *ActionNodeClient) Get(ctx context.Context, id string) (*ActionNode, error) {
	return c.Query().Where(actionnode.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActionNodeClient) GetX(ctx context.Context, id string) *ActionNode {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDecision queries the decision edge of a ActionNode.
func (c *ActionNodeClient) QueryDecision(_m *ActionNode) *DecisionNodeQuery {
	query := (&DecisionNodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(actionnode.Table, actionnode.FieldID, id),
			sqlgraph.To(decisionnode.Table, decisionnode.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, actionnode.DecisionTable, actionnode.DecisionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOutcomes queries the outcomes edge of a ActionNode.
func (c *ActionNodeClient) QueryOutcomes(_m *ActionNode) *OutcomeNodeQuery {
	query := (&OutcomeNodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(actionnode.Table, actionnode.FieldID, id),
			sqlgraph.To(outcomenode.Table, outcomenode.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, actionnode.OutcomesTable, actionnode.OutcomesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ActionNodeClient) Hooks() []Hook {
	return c.hooks.ActionNode
}

// Interceptors returns the client interceptors.
func (c *ActionNodeClient) Interceptors() []Interceptor {
	return c.inters.ActionNode
}

func (c *ActionNodeClient) mutate(ctx context.Context, m *ActionNodeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActionNodeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActionNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActionNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActionNodeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActionNode mutation op: %q", m.Op())
	}
}

// CausalEdgeClient is a client for the CausalEdge schema.
type CausalEdgeClient struct {
	config
}

// NewCausalEdgeClient returns a client for the CausalEdge from the given config.
func NewCausalEdgeClient(c config) *CausalEdgeClient {
	return &CausalEdgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `causaledge.Hooks(f(g(h())))`.
func (c *CausalEdgeClient) Use(hooks ...Hook) {
	c.hooks.CausalEdge = append(c.hooks.CausalEdge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `causaledge.Intercept(f(g(h())))`.
func (c *CausalEdgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.CausalEdge = append(c.inters.CausalEdge, interceptors...)
}

// Create returns a builder for creating a CausalEdge entity.
func (c *CausalEdgeClient) Create() *CausalEdgeCreate {
	mutation := newCausalEdgeMutation(c.config, OpCreate)
	return &CausalEdgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CausalEdge entities.
func (c *CausalEdgeClient) CreateBulk(builders ...*CausalEdgeCreate) *CausalEdgeCreateBulk {
	return &CausalEdgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CausalEdgeClient) MapCreateBulk(slice any, setFunc func(*CausalEdgeCreate, int)) *CausalEdgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CausalEdgeCreateBulk{err: fmt.Errorf("calling to CausalEdgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CausalEdgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CausalEdgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CausalEdge.
func (c *CausalEdgeClient) Update() *CausalEdgeUpdate {
	mutation := newCausalEdgeMutation(c.config, OpUpdate)
	return &CausalEdgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CausalEdgeClient) UpdateOne(_m *CausalEdge) *CausalEdgeUpdateOne {
	mutation := newCausalEdgeMutation(c.config, OpUpdateOne, withCausalEdge(_m))
	return &CausalEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CausalEdgeClient) UpdateOneID(id string) *CausalEdgeUpdateOne {
	mutation := newCausalEdgeMutation(c.config, OpUpdateOne, withCausalEdgeID(id))
	return &CausalEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CausalEdge.
func (c *CausalEdgeClient) Delete() *CausalEdgeDelete {
	mutation := newCausalEdgeMutation(c.config, OpDelete)
	return &CausalEdgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CausalEdgeClient) DeleteOne(_m *CausalEdge) *CausalEdgeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CausalEdgeClient) DeleteOneID(id string) *CausalEdgeDeleteOne {
	builder := c.Delete().Where(causaledge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CausalEdgeDeleteOne{builder}
}

// Query returns a query builder for CausalEdge.
func (c *CausalEdgeClient) Query() *CausalEdgeQuery {
	return &CausalEdgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCausalEdge},
		inters: c.Interceptors(),
	}
}

// Get returns a CausalEdge entity by its id.
func (c *CausalEdgeClient) Get(ctx context.Context, id string) (*CausalEdge, error) {
	return c.Query().Where(causaledge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CausalEdgeClient) GetX(ctx context.Context, id string) *CausalEdge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CausalEdgeClient) Hooks() []Hook {
	return c.hooks.CausalEdge
}

// Interceptors returns the client interceptors.
func (c *CausalEdgeClient) Interceptors() []Interceptor {
	return c.inters.CausalEdge
}

func (c *CausalEdgeClient) mutate(ctx context.Context, m *CausalEdgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CausalEdgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CausalEdgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CausalEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CausalEdgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CausalEdge mutation op: %q", m.Op())
	}
}

// DecisionNodeClient is a client for the DecisionNode schema.
type DecisionNodeClient struct {
	config
}

// NewDecisionNodeClient returns a client for the DecisionNode from the given config.
func NewDecisionNodeClient(c config) *DecisionNodeClient {
	return &DecisionNodeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `decisionnode.Hooks(f(g(h())))`.
func (c *DecisionNodeClient) Use(hooks ...Hook) {
	c.hooks.DecisionNode = append(c.hooks.DecisionNode, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `decisionnode.Intercept(f(g(h())))`.
func (c *DecisionNodeClient) Intercept(interceptors ...Interceptor) {
	c.inters.DecisionNode = append(c.inters.DecisionNode, interceptors...)
}

// Create returns a builder for creating a DecisionNode entity.
func (c *DecisionNodeClient) Create() *DecisionNodeCreate {
	mutation := newDecisionNodeMutation(c.config, OpCreate)
	return &DecisionNodeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DecisionNode entities.
func (c *DecisionNodeClient) CreateBulk(builders ...*DecisionNodeCreate) *DecisionNodeCreateBulk {
	return &DecisionNodeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DecisionNodeClient) MapCreateBulk(slice any, setFunc func(*DecisionNodeCreate, int)) *DecisionNodeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DecisionNodeCreateBulk{err: fmt.Errorf("calling to DecisionNodeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DecisionNodeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DecisionNodeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DecisionNode.
func (c *DecisionNodeClient) Update() *DecisionNodeUpdate {
	mutation := newDecisionNodeMutation(c.config, OpUpdate)
	return &DecisionNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DecisionNodeClient) UpdateOne(_m *DecisionNode) *DecisionNodeUpdateOne {
	mutation := newDecisionNodeMutation(c.config, OpUpdateOne, withDecisionNode(_m))
	return &DecisionNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DecisionNodeClient) UpdateOneID(id string) *DecisionNodeUpdateOne {
	mutation := newDecisionNodeMutation(c.config, OpUpdateOne, withDecisionNodeID(id))
	return &DecisionNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DecisionNode.
func (c *DecisionNodeClient) Delete() *DecisionNodeDelete {
	mutation := newDecisionNodeMutation(c.config, OpDelete)
	return &DecisionNodeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DecisionNodeClient) DeleteOne(_m *DecisionNode) *DecisionNodeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DecisionNodeClient) DeleteOneID(id string) *DecisionNodeDeleteOne {
	builder := c.Delete().Where(decisionnode.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DecisionNodeDeleteOne{builder}
}

// Query returns a query builder for DecisionNode.
func (c *DecisionNodeClient) Query() *DecisionNodeQuery {
	return &DecisionNodeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDecisionNode},
		inters: c.Interceptors(),
	}
}

// Get returns a DecisionNode entity by its id.
func (c *DecisionNodeClient) Get(ctx context.Context, id string) (*DecisionNode, error) {
	return c.Query().Where(decisionnode.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DecisionNodeClient) GetX(ctx context.Context, id string) *DecisionNode {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryActions queries the actions edge of a DecisionNode.
func (c *DecisionNodeClient) QueryActions(_m *DecisionNode) *ActionNodeQuery {
	query := (&ActionNodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(decisionnode.Table, decisionnode.FieldID, id),
			sqlgraph.To(actionnode.Table, actionnode.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, decisionnode.ActionsTable, decisionnode.ActionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DecisionNodeClient) Hooks() []Hook {
	return c.hooks.DecisionNode
}

// Interceptors returns the client interceptors.
func (c *DecisionNodeClient) Interceptors() []Interceptor {
	return c.inters.DecisionNode
}

func (c *DecisionNodeClient) mutate(ctx context.Context, m *DecisionNodeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DecisionNodeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DecisionNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DecisionNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DecisionNodeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DecisionNode mutation op: %q", m.Op())
	}
}

// OutcomeNodeClient is a client for the OutcomeNode schema.
type OutcomeNodeClient struct {
	config
}

// NewOutcomeNodeClient returns a client for the OutcomeNode from the given config.
func NewOutcomeNodeClient(c config) *OutcomeNodeClient {
	return &OutcomeNodeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `outcomenode.Hooks(f(g(h())))`.
func (c *OutcomeNodeClient) Use(hooks ...Hook) {
	c.hooks.OutcomeNode = append(c.hooks.OutcomeNode, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `outcomenode.Intercept(f(g(h())))`.
func (c *OutcomeNodeClient) Intercept(interceptors ...Interceptor) {
	c.inters.OutcomeNode = append(c.inters.OutcomeNode, interceptors...)
}

// Create returns a builder for creating a OutcomeNode entity.
func (c *OutcomeNodeClient) Create() *OutcomeNodeCreate {
	mutation := newOutcomeNodeMutation(c.config, OpCreate)
	return &OutcomeNodeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OutcomeNode entities.
func (c *OutcomeNodeClient) CreateBulk(builders ...*OutcomeNodeCreate) *OutcomeNodeCreateBulk {
	return &OutcomeNodeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OutcomeNodeClient) MapCreateBulk(slice any, setFunc func(*OutcomeNodeCreate, int)) *OutcomeNodeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OutcomeNodeCreateBulk{err: fmt.Errorf("calling to OutcomeNodeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OutcomeNodeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OutcomeNodeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OutcomeNode.
func (c *OutcomeNodeClient) Update() *OutcomeNodeUpdate {
	mutation := newOutcomeNodeMutation(c.config, OpUpdate)
	return &OutcomeNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OutcomeNodeClient) UpdateOne(_m *OutcomeNode) *OutcomeNodeUpdateOne {
	mutation := newOutcomeNodeMutation(c.config, OpUpdateOne, withOutcomeNode(_m))
	return &OutcomeNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OutcomeNodeClient) UpdateOneID(id string) *OutcomeNodeUpdateOne {
	mutation := newOutcomeNodeMutation(c.config, OpUpdateOne, withOutcomeNodeID(id))
	return &OutcomeNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OutcomeNode.
func (c *OutcomeNodeClient) Delete() *OutcomeNodeDelete {
	mutation := newOutcomeNodeMutation(c.config, OpDelete)
	return &OutcomeNodeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OutcomeNodeClient) DeleteOne(_m *OutcomeNode) *OutcomeNodeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OutcomeNodeClient) DeleteOneID(id string) *OutcomeNodeDeleteOne {
	builder := c.Delete().Where(outcomenode.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OutcomeNodeDeleteOne{builder}
}

// Query returns a query builder for OutcomeNode.
func (c *OutcomeNodeClient) Query() *OutcomeNodeQuery {
	return &OutcomeNodeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOutcomeNode},
		inters: c.Interceptors(),
	}
}

// Get returns a OutcomeNode entity by its id.
func (c *OutcomeNodeClient) Get(ctx context.Context, id string) (*OutcomeNode, error) {
	return c.Query().Where(outcomenode.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OutcomeNodeClient) GetX(ctx context.Context, id string) *OutcomeNode {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAction queries the action edge of a OutcomeNode.
func (c *OutcomeNodeClient) QueryAction(_m *OutcomeNode) *ActionNodeQuery {
	query := (&ActionNodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(outcomenode.Table, outcomenode.FieldID, id),
			sqlgraph.To(actionnode.Table, actionnode.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, outcomenode.ActionTable, outcomenode.ActionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OutcomeNodeClient) Hooks() []Hook {
	return c.hooks.OutcomeNode
}

// Interceptors returns the client interceptors.
func (c *OutcomeNodeClient) Interceptors() []Interceptor {
	return c.inters.OutcomeNode
}

func (c *OutcomeNodeClient) mutate(ctx context.Context, m *OutcomeNodeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OutcomeNodeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OutcomeNodeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OutcomeNodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OutcomeNodeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OutcomeNode mutation op: %q", m.Op())
	}
}

// PermissionRequestClient is a client for the PermissionRequest schema.
type PermissionRequestClient struct {
	config
}

// NewPermissionRequestClient returns a client for the PermissionRequest from the given config.
func NewPermissionRequestClient(c config) *PermissionRequestClient {
	return &PermissionRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `permissionrequest.Hooks(f(g(h())))`.
func (c *PermissionRequestClient) Use(hooks ...Hook) {
	c.hooks.PermissionRequest = append(c.hooks.PermissionRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `permissionrequest.Intercept(f(g(h())))`.
func (c *PermissionRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.PermissionRequest = append(c.inters.PermissionRequest, interceptors...)
}

// Create returns a builder for creating a PermissionRequest entity.
func (c *PermissionRequestClient) Create() *PermissionRequestCreate {
	mutation := newPermissionRequestMutation(c.config, OpCreate)
	return &PermissionRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PermissionRequest entities.
func (c *PermissionRequestClient) CreateBulk(builders ...*PermissionRequestCreate) *PermissionRequestCreateBulk {
	return &PermissionRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PermissionRequestClient) MapCreateBulk(slice any, setFunc func(*PermissionRequestCreate, int)) *PermissionRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PermissionRequestCreateBulk{err: fmt.Errorf("calling to PermissionRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PermissionRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PermissionRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PermissionRequest.
func (c *PermissionRequestClient) Update() *PermissionRequestUpdate {
	mutation := newPermissionRequestMutation(c.config, OpUpdate)
	return &PermissionRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PermissionRequestClient) UpdateOne(_m *PermissionRequest) *PermissionRequestUpdateOne {
	mutation := newPermissionRequestMutation(c.config, OpUpdateOne, withPermissionRequest(_m))
	return &PermissionRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PermissionRequestClient) UpdateOneID(id string) *PermissionRequestUpdateOne {
	mutation := newPermissionRequestMutation(c.config, OpUpdateOne, withPermissionRequestID(id))
	return &PermissionRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PermissionRequest.
func (c *PermissionRequestClient) Delete() *PermissionRequestDelete {
	mutation := newPermissionRequestMutation(c.config, OpDelete)
	return &PermissionRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PermissionRequestClient) DeleteOne(_m *PermissionRequest) *PermissionRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PermissionRequestClient) DeleteOneID(id string) *PermissionRequestDeleteOne {
	builder := c.Delete().Where(permissionrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PermissionRequestDeleteOne{builder}
}

// Query returns a query builder for PermissionRequest.
func (c *PermissionRequestClient) Query() *PermissionRequestQuery {
	return &PermissionRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePermissionRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a PermissionRequest entity by its id.
func (c *PermissionRequestClient) Get(ctx context.Context, id string) (*PermissionRequest, error) {
	return c.Query().Where(permissionrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PermissionRequestClient) GetX(ctx context.Context, id string) *PermissionRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PermissionRequestClient) Hooks() []Hook {
	return c.hooks.PermissionRequest
}

// Interceptors returns the client interceptors.
func (c *PermissionRequestClient) Interceptors() []Interceptor {
	return c.inters.PermissionRequest
}

func (c *PermissionRequestClient) mutate(ctx context.Context, m *PermissionRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PermissionRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PermissionRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PermissionRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PermissionRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PermissionRequest mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ActionNode, CausalEdge, DecisionNode, OutcomeNode, PermissionRequest,
		Task []ent.Hook
	}
	inters struct {
		ActionNode, CausalEdge, DecisionNode, OutcomeNode, PermissionRequest,
		Task []ent.Interceptor
	}
)
