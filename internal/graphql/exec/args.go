package exec

import (
	"fmt"
	"time"

	"github.com/99designs/gqlgen/graphql"

	"github.com/hotelreservation/backend/internal/domain/entities"
	"github.com/hotelreservation/backend/internal/graphql/model"
	"github.com/hotelreservation/backend/internal/graphql/scalars"
)

func argID(args map[string]interface{}, name string) (string, error) {
	id, err := graphql.UnmarshalID(args[name])
	if err != nil {
		return "", invalidArgument(name, err)
	}
	return id, nil
}

func argStatus(v interface{}) (*entities.ReservationStatus, error) {
	if v == nil {
		return nil, nil
	}
	s, err := graphql.UnmarshalString(v)
	if err != nil {
		return nil, invalidArgument("status", err)
	}
	status := entities.ReservationStatus(s)
	if !status.IsValid() {
		return nil, invalidArgument("status", fmt.Errorf("%q is not a ReservationStatus", s))
	}
	return &status, nil
}

func asObject(v interface{}, name string) (map[string]interface{}, error) {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, invalidArgument(name, fmt.Errorf("expected an object, got %T", v))
	}
	return obj, nil
}

func unmarshalCreateReservationInput(v interface{}) (model.CreateReservationInput, error) {
	var input model.CreateReservationInput
	obj, err := asObject(v, "input")
	if err != nil {
		return input, err
	}

	if input.ClientID, err = argID(obj, "clientId"); err != nil {
		return input, err
	}
	if input.RoomID, err = argID(obj, "roomId"); err != nil {
		return input, err
	}
	if input.CheckInDate, err = scalars.UnmarshalDate(obj["checkInDate"]); err != nil {
		return input, invalidArgument("checkInDate", err)
	}
	if input.CheckOutDate, err = scalars.UnmarshalDate(obj["checkOutDate"]); err != nil {
		return input, invalidArgument("checkOutDate", err)
	}
	if input.NumberOfGuests, err = graphql.UnmarshalInt(obj["numberOfGuests"]); err != nil {
		return input, invalidArgument("numberOfGuests", err)
	}
	if raw, ok := obj["specialRequests"]; ok && raw != nil {
		s, err := graphql.UnmarshalString(raw)
		if err != nil {
			return input, invalidArgument("specialRequests", err)
		}
		input.SpecialRequests = &s
	}
	if input.Status, err = argStatus(obj["status"]); err != nil {
		return input, err
	}
	return input, nil
}

// unmarshalUpdateReservationInput keeps track of which keys the caller
// sent; a key sent as null is set to a nil value.
func unmarshalUpdateReservationInput(v interface{}) (model.UpdateReservationInput, error) {
	var input model.UpdateReservationInput
	obj, err := asObject(v, "input")
	if err != nil {
		return input, err
	}

	for key, raw := range obj {
		switch key {
		case "clientId":
			input.ClientID, err = omittableID(key, raw)
		case "roomId":
			input.RoomID, err = omittableID(key, raw)
		case "checkInDate":
			input.CheckInDate, err = omittableDate(key, raw)
		case "checkOutDate":
			input.CheckOutDate, err = omittableDate(key, raw)
		case "numberOfGuests":
			input.NumberOfGuests, err = omittableInt(key, raw)
		case "specialRequests":
			input.SpecialRequests, err = omittableString(key, raw)
		case "status":
			var status *entities.ReservationStatus
			status, err = argStatus(raw)
			input.Status = graphql.OmittableOf(status)
		}
		if err != nil {
			return input, err
		}
	}
	return input, nil
}

func omittableID(name string, raw interface{}) (graphql.Omittable[*string], error) {
	if raw == nil {
		return graphql.OmittableOf[*string](nil), nil
	}
	id, err := graphql.UnmarshalID(raw)
	if err != nil {
		return graphql.Omittable[*string]{}, invalidArgument(name, err)
	}
	return graphql.OmittableOf(&id), nil
}

func omittableDate(name string, raw interface{}) (graphql.Omittable[*time.Time], error) {
	if raw == nil {
		return graphql.OmittableOf[*time.Time](nil), nil
	}
	d, err := scalars.UnmarshalDate(raw)
	if err != nil {
		return graphql.Omittable[*time.Time]{}, invalidArgument(name, err)
	}
	return graphql.OmittableOf(&d), nil
}

func omittableInt(name string, raw interface{}) (graphql.Omittable[*int], error) {
	if raw == nil {
		return graphql.OmittableOf[*int](nil), nil
	}
	n, err := graphql.UnmarshalInt(raw)
	if err != nil {
		return graphql.Omittable[*int]{}, invalidArgument(name, err)
	}
	return graphql.OmittableOf(&n), nil
}

func omittableString(name string, raw interface{}) (graphql.Omittable[*string], error) {
	if raw == nil {
		return graphql.OmittableOf[*string](nil), nil
	}
	s, err := graphql.UnmarshalString(raw)
	if err != nil {
		return graphql.Omittable[*string]{}, invalidArgument(name, err)
	}
	return graphql.OmittableOf(&s), nil
}
