// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codecoder-dev/codecoder/ent/actionnode"
	"github.com/codecoder-dev/codecoder/ent/decisionnode"
	"github.com/codecoder-dev/codecoder/ent/outcomenode"
	"github.com/codecoder-dev/codecoder/ent/predicate"
)

// ActionNodeQuery is the builder for querying ActionNode entities.
type ActionNodeQuery struct {
	config
	ctx          *QueryContext
	order        []actionnode.OrderOption
	inters       []Interceptor
	predicates   []predicate.ActionNode
	withDecision *DecisionNodeQuery
	withOutcomes *OutcomeNodeQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ActionNodeQuery builder.
func (_q *ActionNodeQuery) Where(ps ...predicate.ActionNode) *ActionNodeQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ActionNodeQuery) Limit(limit int) *ActionNodeQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ActionNodeQuery) Offset(offset int) *ActionNodeQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ActionNodeQuery) Unique(unique bool) *ActionNodeQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ActionNodeQuery) Order(o ...actionnode.OrderOption) *ActionNodeQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDecision chains the current query on the "decision" edge.
func (_q *ActionNodeQuery) QueryDecision() *DecisionNodeQuery {
	query := (&DecisionNodeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(actionnode.Table, actionnode.FieldID, selector),
			sqlgraph.To(decisionnode.Table, decisionnode.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, actionnode.DecisionTable, actionnode.DecisionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOutcomes chains the current query on the "outcomes" edge.
func (_q *ActionNodeQuery) QueryOutcomes() *OutcomeNodeQuery {
	query := (&OutcomeNodeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(actionnode.Table, actionnode.FieldID, selector),
			sqlgraph.To(outcomenode.Table, outcomenode.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, actionnode.OutcomesTable, actionnode.OutcomesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ActionNode entity from the query.
// Returns a *NotFoundError when no ActionNode was found.
func (_q *ActionNodeQuery) First(ctx context.Context) (*ActionNode, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{actionnode.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ActionNodeQuery) FirstX(ctx context.Context) *ActionNode {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ActionNode ID from the query.
// Returns a *NotFoundError when no ActionNode ID was found.
func (_q *ActionNodeQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{actionnode.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ActionNodeQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ActionNode entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ActionNode entity is found.
// Returns a *NotFoundError when no ActionNode entities are found.
func (_q *ActionNodeQuery) Only(ctx context.Context) (*ActionNode, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{actionnode.Label}
	default:
		return nil, &NotSingularError{actionnode.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ActionNodeQuery) OnlyX(ctx context.Context) *ActionNode {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ActionNode ID in the query.
// Returns a *NotSingularError when more than one ActionNode ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ActionNodeQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{actionnode.Label}
	default:
		err = &NotSingularError{actionnode.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ActionNodeQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ActionNodes.
func (_q *ActionNodeQuery) All(ctx context.Context) ([]*ActionNode, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ActionNode, *ActionNodeQuery]()
	return withInterceptors[[]*ActionNode](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ActionNodeQuery) AllX(ctx context.Context) []*ActionNode {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ActionNode IDs.
func (_q *ActionNodeQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(actionnode.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ActionNodeQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ActionNodeQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ActionNodeQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ActionNodeQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ActionNodeQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ActionNodeQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ActionNodeQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ActionNodeQuery) Clone() *ActionNodeQuery {
	if _q == nil {
		return nil
	}
	return &ActionNodeQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]actionnode.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.ActionNode{}, _q.predicates...),
		withDecision: _q.withDecision.Clone(),
		withOutcomes: _q.withOutcomes.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDecision tells the query-builder to eager-load the nodes that are connected to
// the "decision" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ActionNodeQuery) WithDecision(opts ...func(*DecisionNodeQuery)) *ActionNodeQuery {
	query := (&DecisionNodeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDecision = query
	return _q
}

// WithOutcomes tells the query-builder to eager-load the nodes that are connected to
// the "outcomes" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ActionNodeQuery) WithOutcomes(opts ...func(*OutcomeNodeQuery)) *ActionNodeQuery {
	query := (&OutcomeNodeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOutcomes = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		DecisionID string `json:"decision_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ActionNode.Query().
//		GroupBy(actionnode.FieldDecisionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ActionNodeQuery) GroupBy(field string, fields ...string) *ActionNodeGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ActionNodeGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = actionnode.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		DecisionID string `json:"decision_id,omitempty"`
//	}
//
//	client.ActionNode.Query().
//		Select(actionnode.FieldDecisionID).
//		Scan(ctx, &v)
func (_q *ActionNodeQuery) Select(fields ...string) *ActionNodeSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ActionNodeSelect{ActionNodeQuery: _q}
	sbuild.label = actionnode.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ActionNodeSelect configured with the given aggregations.
func (_q *ActionNodeQuery) Aggregate(fns ...AggregateFunc) *ActionNodeSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ActionNodeQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !actionnode.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ActionNodeQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ActionNode, error) {
	var (
		nodes       = []*ActionNode{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withDecision != nil,
			_q.withOutcomes != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ActionNode).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ActionNode{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withDecision; query != nil {
		if err := _q.loadDecision(ctx, query, nodes, nil,
			func(n *ActionNode, e *DecisionNode) { n.Edges.Decision = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withOutcomes; query != nil {
		if err := _q.loadOutcomes(ctx, query, nodes,
			func(n *ActionNode) { n.Edges.Outcomes = []*OutcomeNode{} },
			func(n *ActionNode, e *OutcomeNode) { n.Edges.Outcomes = append(n.Edges.Outcomes, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ActionNodeQuery) loadDecision(ctx context.Context, query *DecisionNodeQuery, nodes []*ActionNode, init func(*ActionNode), assign func(*ActionNode, *DecisionNode)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*ActionNode)
	for i := range nodes {
		fk := nodes[i].DecisionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(decisionnode.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "decision_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ActionNodeQuery) loadOutcomes(ctx context.Context, query *OutcomeNodeQuery, nodes []*ActionNode, init func(*ActionNode), assign func(*ActionNode, *OutcomeNode)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ActionNode)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(outcomenode.FieldActionID)
	}
	query.Where(predicate.OutcomeNode(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(actionnode.OutcomesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ActionID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "action_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ActionNodeQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ActionNodeQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(actionnode.Table, actionnode.Columns, sqlgraph.NewFieldSpec(actionnode.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, actionnode.FieldID)
		for i := range fields {
			if fields[i] != actionnode.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withDecision != nil {
			_spec.Node.AddColumnOnce(actionnode.FieldDecisionID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ActionNodeQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(actionnode.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = actionnode.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ActionNodeGroupBy is the group-by builder for ActionNode entities.
type ActionNodeGroupBy struct {
	selector
	build *ActionNodeQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ActionNodeGroupBy) Aggregate(fns ...AggregateFunc) *ActionNodeGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ActionNodeGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ActionNodeQuery, *ActionNodeGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ActionNodeGroupBy) sqlScan(ctx context.Context, root *ActionNodeQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ActionNodeSelect is the builder for selecting fields of ActionNode entities.
type ActionNodeSelect struct {
	*ActionNodeQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ActionNodeSelect) Aggregate(fns ...AggregateFunc) *ActionNodeSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ActionNodeSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ActionNodeQuery, *ActionNodeSelect](ctx, _s.ActionNodeQuery, _s, _s.inters, v)
}

func (_s *ActionNodeSelect) sqlScan(ctx context.Context, root *ActionNodeQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
