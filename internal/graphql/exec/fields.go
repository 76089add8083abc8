package exec

import (
	"context"
	"fmt"
	"sync"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/hotelreservation/backend/internal/domain/entities"
	"github.com/hotelreservation/backend/internal/graphql/scalars"
	apperrors "github.com/hotelreservation/backend/pkg/errors"
)

var (
	queryImplementors       = []string{"Query"}
	mutationImplementors    = []string{"Mutation"}
	reservationImplementors = []string{"Reservation"}
	clientImplementors      = []string{"Client"}
	roomImplementors        = []string{"Room"}
)

// executionContext is the state of one running operation
type executionContext struct {
	*Executor
	opCtx  *graphql.OperationContext
	errors *errorCollector
}

func childPath(path ast.Path, elem ast.PathElement) ast.Path {
	out := make(ast.Path, len(path), len(path)+1)
	copy(out, path)
	return append(out, elem)
}

// nonNull reports whether typeName.fieldName is declared non-null
func (ec *executionContext) nonNull(typeName, fieldName string) bool {
	def := ec.schema.Types[typeName]
	if def == nil {
		return false
	}
	field := def.Fields.ForName(fieldName)
	return field != nil && field.Type.NonNull
}

// object writes the collected fields of one object value. A nil marshaler
// from resolve on a non-null field nulls the whole object.
func (ec *executionContext) object(typeName string, implementors []string, sel ast.SelectionSet, resolve func(field graphql.CollectedField) graphql.Marshaler) graphql.Marshaler {
	fields := graphql.CollectFields(ec.opCtx, sel, implementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		var value graphql.Marshaler
		if field.Name == "__typename" {
			value = graphql.MarshalString(typeName)
		} else {
			value = resolve(field)
		}
		if value == nil {
			if ec.nonNull(typeName, field.Name) {
				return nil
			}
			value = graphql.Null
		}
		out.Values[i] = value
	}
	return out
}

// list marshals n items concurrently; one nil item nulls the list when the
// items are non-null.
func (ec *executionContext) list(n int, itemsNonNull bool, item func(i int) graphql.Marshaler) graphql.Marshaler {
	out := make(graphql.Array, n)
	if n == 1 {
		out[0] = item(0)
	} else {
		var wg sync.WaitGroup
		wg.Add(n)
		for i := 0; i < n; i++ {
			go func(i int) {
				defer wg.Done()
				out[i] = item(i)
			}(i)
		}
		wg.Wait()
	}

	for i, v := range out {
		if v == nil {
			if itemsNonNull {
				return nil
			}
			out[i] = graphql.Null
		}
	}
	return out
}

// Root fields

func (ec *executionContext) queryRoot(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	return ec.object("Query", queryImplementors, sel, func(field graphql.CollectedField) graphql.Marshaler {
		path := ast.Path{ast.PathName(field.Alias)}
		return ec.queryField(ctx, path, field)
	})
}

func (ec *executionContext) mutationRoot(ctx context.Context, sel ast.SelectionSet) graphql.Marshaler {
	// Root mutation fields run one after another in document order.
	return ec.object("Mutation", mutationImplementors, sel, func(field graphql.CollectedField) graphql.Marshaler {
		path := ast.Path{ast.PathName(field.Alias)}
		return ec.mutationField(ctx, path, field)
	})
}

func (ec *executionContext) queryField(ctx context.Context, path ast.Path, field graphql.CollectedField) graphql.Marshaler {
	q := ec.resolvers.Query()
	args := field.ArgumentMap(ec.opCtx.Variables)

	switch field.Name {
	case "getReservation":
		id, err := argID(args, "id")
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		res, err := q.GetReservation(ctx, id)
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		return ec.marshalReservation(ctx, path, field.Selections, res)

	case "getAllReservations":
		res, err := q.GetAllReservations(ctx)
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		return ec.marshalReservations(ctx, path, field.Selections, res)

	case "getReservationsByClient":
		id, err := argID(args, "clientId")
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		res, err := q.GetReservationsByClient(ctx, id)
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		return ec.marshalReservations(ctx, path, field.Selections, res)

	case "getReservationsByRoom":
		id, err := argID(args, "roomId")
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		res, err := q.GetReservationsByRoom(ctx, id)
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		return ec.marshalReservations(ctx, path, field.Selections, res)

	case "getReservationsByStatus":
		status, err := argStatus(args["status"])
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		res, err := q.GetReservationsByStatus(ctx, *status)
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		return ec.marshalReservations(ctx, path, field.Selections, res)

	case "getClient":
		id, err := argID(args, "id")
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		res, err := q.GetClient(ctx, id)
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		return ec.marshalClient(ctx, path, field.Selections, res)

	case "getAllClients":
		res, err := q.GetAllClients(ctx)
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		return ec.list(len(res), true, func(i int) graphql.Marshaler {
			return ec.marshalClient(ctx, childPath(path, ast.PathIndex(i)), field.Selections, res[i])
		})

	case "getRoom":
		id, err := argID(args, "id")
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		res, err := q.GetRoom(ctx, id)
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		return ec.marshalRoom(ctx, path, field.Selections, res)

	case "getAllRooms":
		res, err := q.GetAllRooms(ctx)
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		return ec.marshalRooms(ctx, path, field.Selections, res)

	case "getAvailableRooms":
		res, err := q.GetAvailableRooms(ctx)
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		return ec.marshalRooms(ctx, path, field.Selections, res)

	case "__schema":
		res, err := ec.introspectSchema()
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		return ec.marshalSchema(ctx, path, field.Selections, res)

	case "__type":
		name, err := graphql.UnmarshalString(args["name"])
		if err != nil {
			return ec.fail(ctx, path, invalidArgument("name", err))
		}
		res, err := ec.introspectType(name)
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		return ec.marshalType(ctx, path, field.Selections, res)
	}

	return ec.fail(ctx, path, fmt.Errorf("unknown field Query.%s", field.Name))
}

func (ec *executionContext) mutationField(ctx context.Context, path ast.Path, field graphql.CollectedField) graphql.Marshaler {
	m := ec.resolvers.Mutation()
	args := field.ArgumentMap(ec.opCtx.Variables)

	switch field.Name {
	case "createReservation":
		input, err := unmarshalCreateReservationInput(args["input"])
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		res, err := m.CreateReservation(ctx, input)
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		return ec.marshalReservation(ctx, path, field.Selections, res)

	case "updateReservation":
		id, err := argID(args, "id")
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		input, err := unmarshalUpdateReservationInput(args["input"])
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		res, err := m.UpdateReservation(ctx, id, input)
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		return ec.marshalReservation(ctx, path, field.Selections, res)

	case "deleteReservation":
		id, err := argID(args, "id")
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		deleted, err := m.DeleteReservation(ctx, id)
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		return graphql.MarshalBoolean(deleted)

	case "cancelReservation":
		id, err := argID(args, "id")
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		res, err := m.CancelReservation(ctx, id)
		if err != nil {
			return ec.fail(ctx, path, err)
		}
		return ec.marshalReservation(ctx, path, field.Selections, res)
	}

	return ec.fail(ctx, path, fmt.Errorf("unknown field Mutation.%s", field.Name))
}

func (ec *executionContext) fail(ctx context.Context, path ast.Path, err error) graphql.Marshaler {
	ec.errors.add(ctx, path, err)
	return nil
}

// Objects

func (ec *executionContext) marshalReservations(ctx context.Context, path ast.Path, sel ast.SelectionSet, v []*entities.Reservation) graphql.Marshaler {
	return ec.list(len(v), true, func(i int) graphql.Marshaler {
		return ec.marshalReservation(ctx, childPath(path, ast.PathIndex(i)), sel, v[i])
	})
}

func (ec *executionContext) marshalReservation(ctx context.Context, path ast.Path, sel ast.SelectionSet, obj *entities.Reservation) graphql.Marshaler {
	if obj == nil {
		return nil
	}
	return ec.object("Reservation", reservationImplementors, sel, func(field graphql.CollectedField) graphql.Marshaler {
		fieldPath := childPath(path, ast.PathName(field.Alias))
		switch field.Name {
		case "id":
			return marshalID(obj.ID)
		case "client":
			return ec.marshalClient(ctx, fieldPath, field.Selections, &obj.Client)
		case "room":
			return ec.marshalRoom(ctx, fieldPath, field.Selections, &obj.Room)
		case "checkInDate":
			return scalars.MarshalDate(obj.CheckInDate)
		case "checkOutDate":
			return scalars.MarshalDate(obj.CheckOutDate)
		case "numberOfGuests":
			return graphql.MarshalInt(obj.NumberOfGuests)
		case "totalPrice":
			return scalars.MarshalDecimal(obj.TotalPrice)
		case "status":
			return graphql.MarshalString(string(obj.Status))
		case "specialRequests":
			return marshalOptionalString(obj.SpecialRequests)
		case "createdAt":
			return scalars.MarshalDateTime(obj.CreatedAt)
		case "updatedAt":
			return scalars.MarshalOptionalDateTime(obj.UpdatedAt)
		}
		return ec.fail(ctx, fieldPath, fmt.Errorf("unknown field Reservation.%s", field.Name))
	})
}

func (ec *executionContext) marshalClient(ctx context.Context, path ast.Path, sel ast.SelectionSet, obj *entities.Client) graphql.Marshaler {
	if obj == nil {
		return nil
	}
	return ec.object("Client", clientImplementors, sel, func(field graphql.CollectedField) graphql.Marshaler {
		fieldPath := childPath(path, ast.PathName(field.Alias))
		switch field.Name {
		case "id":
			return marshalID(obj.ID)
		case "firstName":
			return graphql.MarshalString(obj.FirstName)
		case "lastName":
			return graphql.MarshalString(obj.LastName)
		case "email":
			return graphql.MarshalString(obj.Email)
		case "phone":
			return marshalOptionalString(obj.Phone)
		case "address":
			return marshalOptionalString(obj.Address)
		case "createdAt":
			return scalars.MarshalDateTime(obj.CreatedAt)
		case "updatedAt":
			return scalars.MarshalOptionalDateTime(obj.UpdatedAt)
		case "reservations":
			res, err := ec.resolvers.Client().Reservations(ctx, obj)
			if err != nil {
				return ec.fail(ctx, fieldPath, err)
			}
			if res == nil {
				return graphql.Null
			}
			return ec.marshalReservations(ctx, fieldPath, field.Selections, res)
		}
		return ec.fail(ctx, fieldPath, fmt.Errorf("unknown field Client.%s", field.Name))
	})
}

func (ec *executionContext) marshalRooms(ctx context.Context, path ast.Path, sel ast.SelectionSet, v []*entities.Room) graphql.Marshaler {
	return ec.list(len(v), true, func(i int) graphql.Marshaler {
		return ec.marshalRoom(ctx, childPath(path, ast.PathIndex(i)), sel, v[i])
	})
}

func (ec *executionContext) marshalRoom(ctx context.Context, path ast.Path, sel ast.SelectionSet, obj *entities.Room) graphql.Marshaler {
	if obj == nil {
		return nil
	}
	return ec.object("Room", roomImplementors, sel, func(field graphql.CollectedField) graphql.Marshaler {
		switch field.Name {
		case "id":
			return marshalID(obj.ID)
		case "roomNumber":
			return graphql.MarshalString(obj.RoomNumber)
		case "roomType":
			return graphql.MarshalString(string(obj.RoomType))
		case "pricePerNight":
			return scalars.MarshalDecimal(obj.PricePerNight)
		case "capacity":
			return graphql.MarshalInt(obj.Capacity)
		case "description":
			return marshalOptionalString(obj.Description)
		case "amenities":
			amenities := make(graphql.Array, len(obj.Amenities))
			for i, a := range obj.Amenities {
				amenities[i] = graphql.MarshalString(a)
			}
			return amenities
		case "isAvailable":
			return graphql.MarshalBoolean(obj.IsAvailable)
		case "createdAt":
			return scalars.MarshalDateTime(obj.CreatedAt)
		}
		return ec.fail(ctx, childPath(path, ast.PathName(field.Alias)), fmt.Errorf("unknown field Room.%s", field.Name))
	})
}

// Scalars

func marshalID(id int64) graphql.Marshaler {
	return graphql.MarshalID(fmt.Sprintf("%d", id))
}

func marshalOptionalString(s *string) graphql.Marshaler {
	if s == nil {
		return graphql.Null
	}
	return graphql.MarshalString(*s)
}

func invalidArgument(name string, err error) error {
	return apperrors.NewValidationError(fmt.Sprintf("invalid argument %s: %v", name, err))
}
