package dtype

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestByteOrderStr(t *testing.T) {
	n := NativeOrder()
	if n != "<" && n != ">" {
		t.Fatalf("unexpected native order %q", n)
	}

	tests := []struct {
		order    ByteOrder
		expected string
	}{
		{OrderNative, n},
		{OrderSwapped, swappedChar()},
		{OrderNA, ""},
		{OrderLittle, "<"},
		{OrderBig, ">"},
	}

	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			if got := byteOrderStr(tt.order); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestWithOrderNormalizes(t *testing.T) {
	if got := Float(8).WithOrder(platformOrder()).Order; got != OrderNative {
		t.Errorf("expected platform order to normalize to native, got %v", got)
	}
	if got := Float(8).WithOrder(swapped()).Order; got != swapped() {
		t.Errorf("expected swapped order to be kept, got %v", got)
	}
	if got := Int(1).WithOrder(OrderBig).Order; got != OrderNA {
		t.Errorf("expected single-byte int to keep NA order, got %v", got)
	}
	if got := Bytes(4).WithOrder(OrderBig).Order; got != OrderNA {
		t.Errorf("expected bytes to keep NA order, got %v", got)
	}
}

func TestIsNative(t *testing.T) {
	tests := []struct {
		name     string
		d        *Descriptor
		expected bool
	}{
		{"native", Float(8), true},
		{"not applicable", Bool(), true},
		{"platform explicit", &Descriptor{Kind: KindFloat, ItemSize: 8, Order: platformOrder()}, true},
		{"swapped explicit", Float(8).WithOrder(swapped()), false},
		{"swapped marker", &Descriptor{Kind: KindFloat, ItemSize: 8, Order: OrderSwapped}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.IsNative(); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestDescriptorStrAndName(t *testing.T) {
	n := NativeOrder()

	tests := []struct {
		name string
		d    *Descriptor
		str  string
		long string
	}{
		{"float64", Float(8), n + "f8", "float64"},
		{"int8", Int(1), "|i1", "int8"},
		{"uint64", Uint(8), n + "u8", "uint64"},
		{"bool", Bool(), "|b1", "bool"},
		{"object", Object(), "|O", "object"},
		{"bytes unsized", Bytes(0), "|S0", "bytes"},
		{"bytes10", Bytes(10), "|S10", "bytes80"},
		{"unicode3", Unicode(3), n + "U3", "str96"},
		{"void unsized", Void(0), "|V0", "void"},
		{"datetime ms", Datetime("ms"), n + "M8[ms]", "datetime64[ms]"},
		{"timedelta generic", Timedelta(""), n + "m8", "timedelta64"},
		{"struct", Packed(F("a", Int(4)), F("b", Int(4))), "|V8", "void64"},
		{"record", Packed(F("a", Int(4))).WithTypeName(RecordTypeName), "|V4", "record32"},
		{"subarray", Array(Int(2), 3), "|V6", "void48"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Str(); got != tt.str {
				t.Errorf("Str: expected %q, got %q", tt.str, got)
			}
			if got := tt.d.Name(); got != tt.long {
				t.Errorf("Name: expected %q, got %q", tt.long, got)
			}
		})
	}
}

func TestDescriptorAccessors(t *testing.T) {
	d := Struct(16, F("x", Float(8)).At(0), F("y", Int(4)).At(8).Titled("why"))

	names := d.Names()
	if len(names) != 2 || names[0] != "x" || names[1] != "y" {
		t.Errorf("unexpected names %v", names)
	}
	f, ok := d.Field("y")
	if !ok || f.Offset != 8 || f.Title != "why" {
		t.Errorf("unexpected field %+v (found %v)", f, ok)
	}
	if _, ok := d.Field("z"); ok {
		t.Error("expected missing field lookup to fail")
	}
	if Float(8).Names() != nil {
		t.Error("expected nil names for scalar descriptor")
	}

	if d.IsBuiltin() != 0 || Float(8).IsBuiltin() != 1 || User("pkg.T", 4).IsBuiltin() != 2 {
		t.Error("unexpected builtin levels")
	}
	if Float(8).WithAligned().Aligned {
		t.Error("aligned flag must only stick to structured descriptors")
	}
	if !d.WithAligned().IsAlignedStruct() {
		t.Error("expected aligned struct")
	}
}

func TestDatetimeMissingUnitLogs(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	log := zap.New(core)

	got, err := Repr(Datetime(""), WithLogger(log))
	if err != nil {
		t.Fatalf("Repr failed: %v", err)
	}
	if expected := "dtype('" + NativeOrder() + "M8')"; got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
	if n := logs.FilterMessage("datetime descriptor has no unit metadata").Len(); n != 1 {
		t.Errorf("expected 1 warning, got %d", n)
	}
}

func TestInternalErrorLogged(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	defer SetLogger(prev)

	_, err := Repr(&Descriptor{Kind: KindUser})
	if !errors.Is(err, ErrUnrecognizedType) {
		t.Fatalf("expected ErrUnrecognizedType, got %v", err)
	}
	entries := logs.FilterMessage("descriptor invariant violated").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 error entry, got %d", len(entries))
	}
	if kind := entries[0].ContextMap()["kind"]; kind != "user" {
		t.Errorf("expected kind field %q, got %v", "user", kind)
	}
}

func TestLongNumericName(t *testing.T) {
	name, err := longNumericName('c', 16)
	if err != nil || name != "complex128" {
		t.Errorf("expected complex128, got %q (err %v)", name, err)
	}

	_, err = longNumericName('x', 8)
	if !errors.Is(err, ErrUnknownKindChar) {
		t.Errorf("expected ErrUnknownKindChar, got %v", err)
	}
}

func TestWriteQuoted(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"f1", `'f1'`},
		{"it's", `"it's"`},
		{`a'b"c`, `'a\'b"c'`},
		{`say "hi"`, `'say "hi"'`},
		{"tab\there", `'tab\there'`},
		{"line\n", `'line\n'`},
		{`back\slash`, `'back\\slash'`},
		{"\x00\x7f", `'\x00\x7f'`},
		{"é", `'é'`},
		{"\u00a0", `'\xa0'`},
		{"\u200b", `'\u200b'`},
		{"", `''`},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			var b strings.Builder
			writeQuoted(&b, tt.in)
			if got := b.String(); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestWriteShape(t *testing.T) {
	tests := []struct {
		shape    []int
		expected string
	}{
		{nil, "()"},
		{[]int{4}, "(4,)"},
		{[]int{2, 3}, "(2, 3)"},
		{[]int{1, 2, 3}, "(1, 2, 3)"},
	}

	for _, tt := range tests {
		var b strings.Builder
		writeShape(&b, tt.shape)
		if got := b.String(); got != tt.expected {
			t.Errorf("shape %v: expected %q, got %q", tt.shape, tt.expected, got)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindFloat.String() != "float" || Kind(250).String() != "unknown" {
		t.Error("unexpected kind names")
	}
	if Kind(250).Char() != 0 || KindTimedelta.Char() != 'm' {
		t.Error("unexpected kind chars")
	}
	if !KindVoid.IsFlexible() || KindStruct.IsFlexible() {
		t.Error("unexpected flexible kinds")
	}
}
