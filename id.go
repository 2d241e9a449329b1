package gremlingo

// ID is a graph-element identifier. The wire permits any of three shapes
// and downstream code must preserve which one arrived; ID is a closed sum
// over them, following the same closed-interface pattern as Key.
type ID interface {
	isID()
}

// IDString is an Id carried as a string, either because the server sent a
// bare string id, or because deserializeID fell back to stringifying a bare
// JSON number id (§4.3).
type IDString string

// IDInt32 is an Id carried as a 32-bit integer.
type IDInt32 int32

// IDInt64 is an Id carried as a 64-bit integer.
type IDInt64 int64

func (IDString) isID() {}
func (IDInt32) isID()  {}
func (IDInt64) isID()  {}

// deserializeID implements the Id deserializer described in §4.3: attempt a
// normal read, classify the result, and fall back to stringifying the raw
// node when the read failed because it hit an untyped JSON number. strict
// disables that fallback (Options.StrictMode, see options.go), turning a
// bare-number id into a hard error instead of a salvaged IDString.
func deserializeID(raw []byte, read readFunc, strict bool) (ID, error) {
	v, err := read(raw)
	if err == nil {
		switch t := v.(type) {
		case string:
			return IDString(t), nil
		case int32:
			return IDInt32(t), nil
		case int64:
			return IDInt64(t), nil
		default:
			return nil, decodeErr(KindDowncastFailure, string(raw), "%v cannot be an id", v)
		}
	}

	if strict {
		return nil, err
	}

	var de *DecodeError
	if ok := asDecodeError(err, &de); ok && de.Kind == KindBareNumber {
		return IDString(string(raw)), nil
	}
	return nil, err
}

func asDecodeError(err error, target **DecodeError) bool {
	de, ok := err.(*DecodeError)
	if ok {
		*target = de
	}
	return ok
}
