package oscbridge

import "github.com/goaura/aura"

func hslArgs(args []interface{}) (aura.HSL, bool) {
	if len(args) != 3 {
		return aura.HSL{}, false
	}
	var v [3]float32
	for i, a := range args {
		f, ok := floatArg(a)
		if !ok {
			return aura.HSL{}, false
		}
		v[i] = f
	}
	return aura.HSL{H: v[0], S: v[1], L: v[2]}, true
}

func floatArg(a interface{}) (float32, bool) {
	switch v := a.(type) {
	case float32:
		return v, true
	case float64:
		return float32(v), true
	case int32:
		return float32(v), true
	case int64:
		return float32(v), true
	}
	return 0, false
}

func intArg(a interface{}) (int, bool) {
	switch v := a.(type) {
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	}
	return 0, false
}

func boolArg(a interface{}) (bool, bool) {
	switch v := a.(type) {
	case bool:
		return v, true
	case int32:
		return v != 0, true
	case int64:
		return v != 0, true
	case float32:
		return v != 0, true
	}
	return false, false
}
