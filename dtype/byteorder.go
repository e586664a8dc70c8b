package dtype

import "golang.org/x/sys/cpu"

// ByteOrder is the byte-order marker carried by a Descriptor.
type ByteOrder uint8

const (
	OrderNative   ByteOrder = iota // platform order
	OrderLittle                    // explicit little-endian
	OrderBig                       // explicit big-endian
	OrderSwapped                   // opposite of the platform order
	OrderNA                        // byte order does not apply
)

var orderChars = [...]string{
	OrderNative:  "=",
	OrderLittle:  "<",
	OrderBig:     ">",
	OrderSwapped: "s",
	OrderNA:      "|",
}

// String returns the marker character ('=', '<', '>', 's' or '|').
func (o ByteOrder) String() string {
	if int(o) < len(orderChars) {
		return orderChars[o]
	}
	return "?"
}

// Platform order characters, resolved once from the host architecture.
var nativeOrderChar, swappedOrderChar = func() (string, string) {
	if cpu.IsBigEndian {
		return ">", "<"
	}
	return "<", ">"
}()

// NativeOrder returns the concrete order character of the running platform.
func NativeOrder() string {
	return nativeOrderChar
}

// platformOrder is the explicit ByteOrder equal to OrderNative on this host.
func platformOrder() ByteOrder {
	if cpu.IsBigEndian {
		return OrderBig
	}
	return OrderLittle
}

// normalize folds an explicit order equal to the host order into OrderNative.
func (o ByteOrder) normalize() ByteOrder {
	if o == platformOrder() {
		return OrderNative
	}
	return o
}

// byteOrderStr resolves a marker to '<', '>' or the empty string.
func byteOrderStr(o ByteOrder) string {
	switch o {
	case OrderNative:
		return nativeOrderChar
	case OrderSwapped:
		// Resolved against the host order.
		return swappedOrderChar
	case OrderNA:
		return ""
	default:
		return o.String()
	}
}
