package errors

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	err := New("0")
	err1 := Wrap(err, "1")
	err2 := Wrap(err1, "2")

	if got := Root(err2); got != err {
		t.Errorf("Root(%v) = %v want %v", err2, got, err)
	}
	if got, want := err2.Error(), "2: 1: 0"; got != want {
		t.Errorf("err2.Error() = %q want %q", got, want)
	}
	if Wrap(nil, "x") != nil {
		t.Error("Wrap(nil) != nil")
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(New("root"), "token %d", 3)
	if got, want := err.Error(), "token 3: root"; got != want {
		t.Errorf("err.Error() = %q want %q", got, want)
	}
}

func TestDetail(t *testing.T) {
	root := New("foo")
	cases := []struct {
		err  error
		want string
	}{
		{root, ""},
		{WithDetail(root, "bar"), "bar"},
		{WithDetail(WithDetail(root, "bar"), "baz"), "bar; baz"},
		{Wrap(WithDetail(root, "bar"), "baz"), "bar"},
		{WithDetailf(root, "expected %s", "colon"), "expected colon"},
	}

	for _, c := range cases {
		if got := Detail(c.err); got != c.want {
			t.Errorf("Detail(%v) = %v want %v", c.err, got, c.want)
		}
		if got := Root(c.err); got != root {
			t.Errorf("Root(%v) = %v want %v", c.err, got, root)
		}
	}
}

func TestData(t *testing.T) {
	root := New("foo")
	err := WithData(root, "a", "b")
	err = WithData(err, "c", "d")
	err = Wrap(err, "baz")

	want := map[string]interface{}{"a": "b", "c": "d"}
	if got := Data(err); !reflect.DeepEqual(got, want) {
		t.Errorf("Data(%#v) = %v want %v", err, got, want)
	}
	if Root(err) != root {
		t.Errorf("Root(%v) != %v", err, root)
	}
}

func TestSub(t *testing.T) {
	x := New("x")
	y := New("y")
	cases := []struct{ root, err, want error }{
		{nil, nil, nil},
		{x, nil, nil},
		{nil, y, nil},
		{x, y, x},
		{x, Wrap(y, "z"), x},
	}

	for _, test := range cases {
		got := Sub(test.root, test.err)
		if got != nil && test.want == nil {
			t.Errorf("Sub(%v, %v) = %v, want nil", test.root, test.err, got)
		} else if Root(got) != test.want {
			t.Errorf("Root(Sub(%v, %v)) = %v, want %v", test.root, test.err, Root(got), test.want)
		}
	}
}

func TestStandardIs(t *testing.T) {
	root := New("root")
	err := WithDetail(Wrap(root, "ctx"), "detail")
	if !stderrors.Is(err, root) {
		t.Errorf("errors.Is(%v, %v) = false", err, root)
	}
}

func TestStack(t *testing.T) {
	err := Wrap(New("root"), "ctx")
	if len(Stack(err)) == 0 {
		t.Fatal("expected a stack trace")
	}
	if got := fmt.Sprintf("%+v", err); !strings.Contains(got, "TestStack") {
		t.Errorf("%%+v output %q does not name the calling test", got)
	}
	if Stack(New("plain")) != nil {
		t.Error("unwrapped error should carry no stack")
	}
}
