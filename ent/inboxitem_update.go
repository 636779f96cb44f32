// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/missionctl/missionctl/ent/inboxitem"
	"github.com/missionctl/missionctl/ent/predicate"
)

// InboxItemUpdate is the builder for updating InboxItem entities.
type InboxItemUpdate struct {
	config
	hooks    []Hook
	mutation *InboxItemMutation
}

// Where appends a list predicates to the InboxItemUpdate builder.
func (_u *InboxItemUpdate) Where(ps ...predicate.InboxItem) *InboxItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTriageState sets the "triage_state" field.
func (_u *InboxItemUpdate) SetTriageState(v inboxitem.TriageState) *InboxItemUpdate {
	_u.mutation.SetTriageState(v)
	return _u
}

// SetNillableTriageState sets the "triage_state" field if the given value is not nil.
func (_u *InboxItemUpdate) SetNillableTriageState(v *inboxitem.TriageState) *InboxItemUpdate {
	if v != nil {
		_u.SetTriageState(*v)
	}
	return _u
}

// SetExtractionJSON sets the "extraction_json" field.
func (_u *InboxItemUpdate) SetExtractionJSON(v map[string]interface{}) *InboxItemUpdate {
	_u.mutation.SetExtractionJSON(v)
	return _u
}

// ClearExtractionJSON clears the value of the "extraction_json" field.
func (_u *InboxItemUpdate) ClearExtractionJSON() *InboxItemUpdate {
	_u.mutation.ClearExtractionJSON()
	return _u
}

// SetExtractionModel sets the "extraction_model" field.
func (_u *InboxItemUpdate) SetExtractionModel(v string) *InboxItemUpdate {
	_u.mutation.SetExtractionModel(v)
	return _u
}

// SetNillableExtractionModel sets the "extraction_model" field if the given value is not nil.
func (_u *InboxItemUpdate) SetNillableExtractionModel(v *string) *InboxItemUpdate {
	if v != nil {
		_u.SetExtractionModel(*v)
	}
	return _u
}

// ClearExtractionModel clears the value of the "extraction_model" field.
func (_u *InboxItemUpdate) ClearExtractionModel() *InboxItemUpdate {
	_u.mutation.ClearExtractionModel()
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *InboxItemUpdate) SetExtractionConfidence(v float64) *InboxItemUpdate {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *InboxItemUpdate) SetNillableExtractionConfidence(v *float64) *InboxItemUpdate {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *InboxItemUpdate) AddExtractionConfidence(v float64) *InboxItemUpdate {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (_u *InboxItemUpdate) ClearExtractionConfidence() *InboxItemUpdate {
	_u.mutation.ClearExtractionConfidence()
	return _u
}

// SetProcessingError sets the "processing_error" field.
func (_u *InboxItemUpdate) SetProcessingError(v string) *InboxItemUpdate {
	_u.mutation.SetProcessingError(v)
	return _u
}

// SetNillableProcessingError sets the "processing_error" field if the given value is not nil.
func (_u *InboxItemUpdate) SetNillableProcessingError(v *string) *InboxItemUpdate {
	if v != nil {
		_u.SetProcessingError(*v)
	}
	return _u
}

// ClearProcessingError clears the value of the "processing_error" field.
func (_u *InboxItemUpdate) ClearProcessingError() *InboxItemUpdate {
	_u.mutation.ClearProcessingError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InboxItemUpdate) SetUpdatedAt(v time.Time) *InboxItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InboxItemMutation object of the builder.
func (_u *InboxItemUpdate) Mutation() *InboxItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InboxItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InboxItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InboxItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InboxItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InboxItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := inboxitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InboxItemUpdate) check() error {
	if v, ok := _u.mutation.TriageState(); ok {
		if err := inboxitem.TriageStateValidator(v); err != nil {
			return &ValidationError{Name: "triage_state", err: fmt.Errorf(`ent: validator failed for field "InboxItem.triage_state": %w`, err)}
		}
	}
	return nil
}

func (_u *InboxItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inboxitem.Table, inboxitem.Columns, sqlgraph.NewFieldSpec(inboxitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.FromNameCleared() {
		_spec.ClearField(inboxitem.FieldFromName, field.TypeString)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(inboxitem.FieldMessageID, field.TypeString)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(inboxitem.FieldSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.TriageState(); ok {
		_spec.SetField(inboxitem.FieldTriageState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExtractionJSON(); ok {
		_spec.SetField(inboxitem.FieldExtractionJSON, field.TypeJSON, value)
	}
	if _u.mutation.ExtractionJSONCleared() {
		_spec.ClearField(inboxitem.FieldExtractionJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractionModel(); ok {
		_spec.SetField(inboxitem.FieldExtractionModel, field.TypeString, value)
	}
	if _u.mutation.ExtractionModelCleared() {
		_spec.ClearField(inboxitem.FieldExtractionModel, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(inboxitem.FieldExtractionConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(inboxitem.FieldExtractionConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ExtractionConfidenceCleared() {
		_spec.ClearField(inboxitem.FieldExtractionConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ProcessingError(); ok {
		_spec.SetField(inboxitem.FieldProcessingError, field.TypeString, value)
	}
	if _u.mutation.ProcessingErrorCleared() {
		_spec.ClearField(inboxitem.FieldProcessingError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(inboxitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inboxitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InboxItemUpdateOne is the builder for updating a single InboxItem entity.
type InboxItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InboxItemMutation
}

// SetTriageState sets the "triage_state" field.
func (_u *InboxItemUpdateOne) SetTriageState(v inboxitem.TriageState) *InboxItemUpdateOne {
	_u.mutation.SetTriageState(v)
	return _u
}

// SetNillableTriageState sets the "triage_state" field if the given value is not nil.
func (_u *InboxItemUpdateOne) SetNillableTriageState(v *inboxitem.TriageState) *InboxItemUpdateOne {
	if v != nil {
		_u.SetTriageState(*v)
	}
	return _u
}

// SetExtractionJSON sets the "extraction_json" field.
func (_u *InboxItemUpdateOne) SetExtractionJSON(v map[string]interface{}) *InboxItemUpdateOne {
	_u.mutation.SetExtractionJSON(v)
	return _u
}

// ClearExtractionJSON clears the value of the "extraction_json" field.
func (_u *InboxItemUpdateOne) ClearExtractionJSON() *InboxItemUpdateOne {
	_u.mutation.ClearExtractionJSON()
	return _u
}

// SetExtractionModel sets the "extraction_model" field.
func (_u *InboxItemUpdateOne) SetExtractionModel(v string) *InboxItemUpdateOne {
	_u.mutation.SetExtractionModel(v)
	return _u
}

// SetNillableExtractionModel sets the "extraction_model" field if the given value is not nil.
func (_u *InboxItemUpdateOne) SetNillableExtractionModel(v *string) *InboxItemUpdateOne {
	if v != nil {
		_u.SetExtractionModel(*v)
	}
	return _u
}

// ClearExtractionModel clears the value of the "extraction_model" field.
func (_u *InboxItemUpdateOne) ClearExtractionModel() *InboxItemUpdateOne {
	_u.mutation.ClearExtractionModel()
	return _u
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (_u *InboxItemUpdateOne) SetExtractionConfidence(v float64) *InboxItemUpdateOne {
	_u.mutation.ResetExtractionConfidence()
	_u.mutation.SetExtractionConfidence(v)
	return _u
}

// SetNillableExtractionConfidence sets the "extraction_confidence" field if the given value is not nil.
func (_u *InboxItemUpdateOne) SetNillableExtractionConfidence(v *float64) *InboxItemUpdateOne {
	if v != nil {
		_u.SetExtractionConfidence(*v)
	}
	return _u
}

// AddExtractionConfidence adds value to the "extraction_confidence" field.
func (_u *InboxItemUpdateOne) AddExtractionConfidence(v float64) *InboxItemUpdateOne {
	_u.mutation.AddExtractionConfidence(v)
	return _u
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (_u *InboxItemUpdateOne) ClearExtractionConfidence() *InboxItemUpdateOne {
	_u.mutation.ClearExtractionConfidence()
	return _u
}

// SetProcessingError sets the "processing_error" field.
func (_u *InboxItemUpdateOne) SetProcessingError(v string) *InboxItemUpdateOne {
	_u.mutation.SetProcessingError(v)
	return _u
}

// SetNillableProcessingError sets the "processing_error" field if the given value is not nil.
func (_u *InboxItemUpdateOne) SetNillableProcessingError(v *string) *InboxItemUpdateOne {
	if v != nil {
		_u.SetProcessingError(*v)
	}
	return _u
}

// ClearProcessingError clears the value of the "processing_error" field.
func (_u *InboxItemUpdateOne) ClearProcessingError() *InboxItemUpdateOne {
	_u.mutation.ClearProcessingError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InboxItemUpdateOne) SetUpdatedAt(v time.Time) *InboxItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the InboxItemMutation object of the builder.
func (_u *InboxItemUpdateOne) Mutation() *InboxItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the InboxItemUpdate builder.
func (_u *InboxItemUpdateOne) Where(ps ...predicate.InboxItem) *InboxItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InboxItemUpdateOne) Select(field string, fields ...string) *InboxItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InboxItem entity.
func (_u *InboxItemUpdateOne) Save(ctx context.Context) (*InboxItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InboxItemUpdateOne) SaveX(ctx context.Context) *InboxItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InboxItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InboxItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InboxItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := inboxitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InboxItemUpdateOne) check() error {
	if v, ok := _u.mutation.TriageState(); ok {
		if err := inboxitem.TriageStateValidator(v); err != nil {
			return &ValidationError{Name: "triage_state", err: fmt.Errorf(`ent: validator failed for field "InboxItem.triage_state": %w`, err)}
		}
	}
	return nil
}

func (_u *InboxItemUpdateOne) sqlSave(ctx context.Context) (_node *InboxItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inboxitem.Table, inboxitem.Columns, sqlgraph.NewFieldSpec(inboxitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InboxItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inboxitem.FieldID)
		for _, f := range fields {
			if !inboxitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != inboxitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.FromNameCleared() {
		_spec.ClearField(inboxitem.FieldFromName, field.TypeString)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(inboxitem.FieldMessageID, field.TypeString)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(inboxitem.FieldSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.TriageState(); ok {
		_spec.SetField(inboxitem.FieldTriageState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ExtractionJSON(); ok {
		_spec.SetField(inboxitem.FieldExtractionJSON, field.TypeJSON, value)
	}
	if _u.mutation.ExtractionJSONCleared() {
		_spec.ClearField(inboxitem.FieldExtractionJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExtractionModel(); ok {
		_spec.SetField(inboxitem.FieldExtractionModel, field.TypeString, value)
	}
	if _u.mutation.ExtractionModelCleared() {
		_spec.ClearField(inboxitem.FieldExtractionModel, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionConfidence(); ok {
		_spec.SetField(inboxitem.FieldExtractionConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedExtractionConfidence(); ok {
		_spec.AddField(inboxitem.FieldExtractionConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ExtractionConfidenceCleared() {
		_spec.ClearField(inboxitem.FieldExtractionConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ProcessingError(); ok {
		_spec.SetField(inboxitem.FieldProcessingError, field.TypeString, value)
	}
	if _u.mutation.ProcessingErrorCleared() {
		_spec.ClearField(inboxitem.FieldProcessingError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(inboxitem.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &InboxItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inboxitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
