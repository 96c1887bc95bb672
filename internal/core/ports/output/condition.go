package ports

// Field names a logical_flow_decorator column that conditions may reference.
// The set is closed; the datastore adapter refuses anything else.
type Field string

const (
	FieldFlowID        Field = "logical_flow_id"
	FieldDecoratorKind Field = "decorator_entity_kind"
	FieldDecoratorID   Field = "decorator_entity_id"
	FieldRating        Field = "rating"
	FieldProvenance    Field = "provenance"
)

// Condition is a composable predicate over logical flow decorator rows,
// passed into the bulk update method. It is a plain expression tree so that
// callers stay decoupled from any particular query engine.
type Condition interface {
	isCondition()
}

// Eq matches rows whose field equals the value.
type Eq struct {
	Field Field
	Value any
}

// Ne matches rows whose field differs from the value.
type Ne struct {
	Field Field
	Value any
}

// In matches rows whose field equals any of the values.
type In struct {
	Field  Field
	Values []any
}

// InSelector matches rows whose field is contained in the selector sub-query.
type InSelector struct {
	Field    Field
	Selector Selector
}

// And matches rows satisfying every inner condition.
type And struct {
	Conditions []Condition
}

// Or matches rows satisfying at least one inner condition.
type Or struct {
	Conditions []Condition
}

// Not inverts the wrapped condition.
type Not struct {
	Wrapped Condition
}

func (Eq) isCondition()         {}
func (Ne) isCondition()         {}
func (In) isCondition()         {}
func (InSelector) isCondition() {}
func (And) isCondition()        {}
func (Or) isCondition()         {}
func (Not) isCondition()        {}

// InIDs builds an In condition over an id list.
func InIDs(field Field, ids []int64) In {
	values := make([]any, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}
	return In{Field: field, Values: values}
}
