package codec_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ripkitten-co/idpcodec/codec"
)

type registered struct {
	Name *string
}

type unregistered struct{}

var registeredTable = codec.Register(codec.NewStruct("Registered",
	codec.Member("Name", codec.String, func(r *registered) **string { return &r.Name }),
))

func TestRegister_FirstWins(t *testing.T) {
	other := codec.NewStruct[registered]("Other")
	if got := codec.Register(other); got != registeredTable {
		t.Error("second registration replaced the first")
	}
	got, ok := codec.For[registered]()
	if !ok || got != registeredTable {
		t.Errorf("For = %v, %v", got, ok)
	}
}

func TestFor_Unregistered(t *testing.T) {
	if _, ok := codec.For[unregistered](); ok {
		t.Error("expected no table")
	}
	if _, ok := codec.Lookup(reflect.TypeFor[unregistered]()); ok {
		t.Error("expected Lookup miss")
	}
	if _, ok := codec.Lookup(nil); ok {
		t.Error("expected Lookup miss for nil type")
	}
}

func TestLookup_ErasedRoundTrip(t *testing.T) {
	for _, typ := range []reflect.Type{reflect.TypeFor[registered](), reflect.TypeFor[*registered]()} {
		e, ok := codec.Lookup(typ)
		if !ok {
			t.Fatalf("Lookup(%v) missed", typ)
		}
		if e.Name() != "Registered" {
			t.Errorf("Name = %q", e.Name())
		}

		byPtr, err := e.MarshalValue(&registered{Name: ptr("a")})
		if err != nil {
			t.Fatalf("marshal ptr: %v", err)
		}
		byVal, err := e.MarshalValue(registered{Name: ptr("a")})
		if err != nil {
			t.Fatalf("marshal value: %v", err)
		}
		if string(byPtr) != `{"Name":"a"}` || string(byVal) != string(byPtr) {
			t.Errorf("got %s and %s", byPtr, byVal)
		}

		var dst registered
		if err := e.UnmarshalValue(byPtr, &dst); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if diff := cmp.Diff(registered{Name: ptr("a")}, dst); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestErased_RejectsWrongTypes(t *testing.T) {
	e, _ := codec.Lookup(reflect.TypeFor[registered]())
	if _, err := e.MarshalValue(42); !errors.Is(err, codec.ErrInvalidArgument) {
		t.Errorf("marshal int: got %v", err)
	}
	var nilDst *registered
	if err := e.UnmarshalValue([]byte(`{}`), nilDst); !errors.Is(err, codec.ErrInvalidArgument) {
		t.Errorf("unmarshal nil dst: got %v", err)
	}
	if err := e.UnmarshalValue([]byte(`{}`), registered{}); !errors.Is(err, codec.ErrInvalidArgument) {
		t.Errorf("unmarshal non-pointer: got %v", err)
	}
}
