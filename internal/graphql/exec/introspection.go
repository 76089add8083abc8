package exec

import (
	"context"
	"fmt"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/introspection"
	"github.com/vektah/gqlparser/v2/ast"

	apperrors "github.com/hotelreservation/backend/pkg/errors"
)

var (
	schemaImplementors     = []string{"__Schema"}
	typeImplementors       = []string{"__Type"}
	fieldImplementors      = []string{"__Field"}
	inputValueImplementors = []string{"__InputValue"}
	enumValueImplementors  = []string{"__EnumValue"}
	directiveImplementors  = []string{"__Directive"}
)

func (ec *executionContext) introspectSchema() (*introspection.Schema, error) {
	if ec.opCtx.DisableIntrospection {
		return nil, apperrors.NewValidationError("introspection disabled")
	}
	return introspection.WrapSchema(ec.schema), nil
}

func (ec *executionContext) introspectType(name string) (*introspection.Type, error) {
	if ec.opCtx.DisableIntrospection {
		return nil, apperrors.NewValidationError("introspection disabled")
	}
	return introspection.WrapTypeFromDef(ec.schema, ec.schema.Types[name]), nil
}

// serialList marshals n non-null items in order. Introspection documents are
// wide and cheap to resolve, so they skip the goroutine per item.
func serialList(n int, item func(i int) graphql.Marshaler) graphql.Marshaler {
	out := make(graphql.Array, n)
	for i := 0; i < n; i++ {
		v := item(i)
		if v == nil {
			return nil
		}
		out[i] = v
	}
	return out
}

func includeDeprecated(ec *executionContext, field graphql.CollectedField) bool {
	v, _ := field.ArgumentMap(ec.opCtx.Variables)["includeDeprecated"].(bool)
	return v
}

func (ec *executionContext) marshalSchema(ctx context.Context, path ast.Path, sel ast.SelectionSet, obj *introspection.Schema) graphql.Marshaler {
	if obj == nil {
		return nil
	}
	return ec.object("__Schema", schemaImplementors, sel, func(field graphql.CollectedField) graphql.Marshaler {
		fieldPath := childPath(path, ast.PathName(field.Alias))
		switch field.Name {
		case "description":
			return marshalOptionalString(obj.Description())
		case "types":
			return ec.marshalTypes(ctx, fieldPath, field.Selections, obj.Types())
		case "queryType":
			return ec.marshalType(ctx, fieldPath, field.Selections, obj.QueryType())
		case "mutationType":
			return ec.marshalType(ctx, fieldPath, field.Selections, obj.MutationType())
		case "subscriptionType":
			return ec.marshalType(ctx, fieldPath, field.Selections, obj.SubscriptionType())
		case "directives":
			directives := obj.Directives()
			return serialList(len(directives), func(i int) graphql.Marshaler {
				return ec.marshalDirective(ctx, childPath(fieldPath, ast.PathIndex(i)), field.Selections, &directives[i])
			})
		}
		return ec.fail(ctx, fieldPath, fmt.Errorf("unknown field __Schema.%s", field.Name))
	})
}

func (ec *executionContext) marshalTypes(ctx context.Context, path ast.Path, sel ast.SelectionSet, types []introspection.Type) graphql.Marshaler {
	return serialList(len(types), func(i int) graphql.Marshaler {
		return ec.marshalType(ctx, childPath(path, ast.PathIndex(i)), sel, &types[i])
	})
}

func (ec *executionContext) marshalType(ctx context.Context, path ast.Path, sel ast.SelectionSet, obj *introspection.Type) graphql.Marshaler {
	if obj == nil {
		return nil
	}
	return ec.object("__Type", typeImplementors, sel, func(field graphql.CollectedField) graphql.Marshaler {
		fieldPath := childPath(path, ast.PathName(field.Alias))
		switch field.Name {
		case "kind":
			return graphql.MarshalString(obj.Kind())
		case "name":
			return marshalOptionalString(obj.Name())
		case "description":
			return marshalOptionalString(obj.Description())
		case "specifiedByURL":
			return marshalOptionalString(obj.SpecifiedByURL())
		case "fields":
			fields := obj.Fields(includeDeprecated(ec, field))
			if fields == nil {
				return graphql.Null
			}
			return serialList(len(fields), func(i int) graphql.Marshaler {
				return ec.marshalSchemaField(ctx, childPath(fieldPath, ast.PathIndex(i)), field.Selections, &fields[i])
			})
		case "interfaces":
			types := obj.Interfaces()
			if types == nil {
				return graphql.Null
			}
			return ec.marshalTypes(ctx, fieldPath, field.Selections, types)
		case "possibleTypes":
			types := obj.PossibleTypes()
			if types == nil {
				return graphql.Null
			}
			return ec.marshalTypes(ctx, fieldPath, field.Selections, types)
		case "enumValues":
			values := obj.EnumValues(includeDeprecated(ec, field))
			if values == nil {
				return graphql.Null
			}
			return serialList(len(values), func(i int) graphql.Marshaler {
				return ec.marshalEnumValue(ctx, childPath(fieldPath, ast.PathIndex(i)), field.Selections, &values[i])
			})
		case "inputFields":
			inputs := obj.InputFields()
			if inputs == nil {
				return graphql.Null
			}
			return ec.marshalInputValues(ctx, fieldPath, field.Selections, inputs)
		case "ofType":
			return ec.marshalType(ctx, fieldPath, field.Selections, obj.OfType())
		case "isOneOf":
			return graphql.MarshalBoolean(obj.IsOneOf())
		}
		return ec.fail(ctx, fieldPath, fmt.Errorf("unknown field __Type.%s", field.Name))
	})
}

func (ec *executionContext) marshalSchemaField(ctx context.Context, path ast.Path, sel ast.SelectionSet, obj *introspection.Field) graphql.Marshaler {
	return ec.object("__Field", fieldImplementors, sel, func(field graphql.CollectedField) graphql.Marshaler {
		fieldPath := childPath(path, ast.PathName(field.Alias))
		switch field.Name {
		case "name":
			return graphql.MarshalString(obj.Name)
		case "description":
			return marshalOptionalString(obj.Description())
		case "args":
			return ec.marshalInputValues(ctx, fieldPath, field.Selections, obj.Args)
		case "type":
			return ec.marshalType(ctx, fieldPath, field.Selections, obj.Type)
		case "isDeprecated":
			return graphql.MarshalBoolean(obj.IsDeprecated())
		case "deprecationReason":
			return marshalOptionalString(obj.DeprecationReason())
		}
		return ec.fail(ctx, fieldPath, fmt.Errorf("unknown field __Field.%s", field.Name))
	})
}

func (ec *executionContext) marshalInputValues(ctx context.Context, path ast.Path, sel ast.SelectionSet, values []introspection.InputValue) graphql.Marshaler {
	return serialList(len(values), func(i int) graphql.Marshaler {
		return ec.marshalInputValue(ctx, childPath(path, ast.PathIndex(i)), sel, &values[i])
	})
}

func (ec *executionContext) marshalInputValue(ctx context.Context, path ast.Path, sel ast.SelectionSet, obj *introspection.InputValue) graphql.Marshaler {
	return ec.object("__InputValue", inputValueImplementors, sel, func(field graphql.CollectedField) graphql.Marshaler {
		fieldPath := childPath(path, ast.PathName(field.Alias))
		switch field.Name {
		case "name":
			return graphql.MarshalString(obj.Name)
		case "description":
			return marshalOptionalString(obj.Description())
		case "type":
			return ec.marshalType(ctx, fieldPath, field.Selections, obj.Type)
		case "defaultValue":
			return marshalOptionalString(obj.DefaultValue)
		case "isDeprecated":
			return graphql.MarshalBoolean(obj.IsDeprecated())
		case "deprecationReason":
			return marshalOptionalString(obj.DeprecationReason())
		}
		return ec.fail(ctx, fieldPath, fmt.Errorf("unknown field __InputValue.%s", field.Name))
	})
}

func (ec *executionContext) marshalEnumValue(ctx context.Context, path ast.Path, sel ast.SelectionSet, obj *introspection.EnumValue) graphql.Marshaler {
	return ec.object("__EnumValue", enumValueImplementors, sel, func(field graphql.CollectedField) graphql.Marshaler {
		switch field.Name {
		case "name":
			return graphql.MarshalString(obj.Name)
		case "description":
			return marshalOptionalString(obj.Description())
		case "isDeprecated":
			return graphql.MarshalBoolean(obj.IsDeprecated())
		case "deprecationReason":
			return marshalOptionalString(obj.DeprecationReason())
		}
		return ec.fail(ctx, childPath(path, ast.PathName(field.Alias)), fmt.Errorf("unknown field __EnumValue.%s", field.Name))
	})
}

func (ec *executionContext) marshalDirective(ctx context.Context, path ast.Path, sel ast.SelectionSet, obj *introspection.Directive) graphql.Marshaler {
	return ec.object("__Directive", directiveImplementors, sel, func(field graphql.CollectedField) graphql.Marshaler {
		fieldPath := childPath(path, ast.PathName(field.Alias))
		switch field.Name {
		case "name":
			return graphql.MarshalString(obj.Name)
		case "description":
			return marshalOptionalString(obj.Description())
		case "isRepeatable":
			return graphql.MarshalBoolean(obj.IsRepeatable)
		case "locations":
			locations := make(graphql.Array, len(obj.Locations))
			for i, loc := range obj.Locations {
				locations[i] = graphql.MarshalString(loc)
			}
			return locations
		case "args":
			return ec.marshalInputValues(ctx, fieldPath, field.Selections, obj.Args)
		}
		return ec.fail(ctx, fieldPath, fmt.Errorf("unknown field __Directive.%s", field.Name))
	})
}
