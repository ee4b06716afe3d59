package htmlify

// voidTags have no closing form and no children.
var voidTags = map[string]bool{
	"area": true, "base": true, "basefont": true, "br": true, "col": true,
	"embed": true, "frame": true, "hr": true, "img": true, "input": true,
	"isindex": true, "keygen": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// boolAttrs are HTML attributes whose presence alone conveys meaning.
// Keys are the canonical (translated, lowercased) attribute names.
var boolAttrs = map[string]bool{
	"async": true, "autofocus": true, "autoplay": true, "checked": true,
	"controls": true, "default": true, "defer": true, "disabled": true,
	"formnovalidate": true, "frameborder": true, "hidden": true,
	"ismap": true, "itemscope": true, "loop": true, "multiple": true,
	"muted": true, "nomodule": true, "novalidate": true, "open": true,
	"readonly": true, "required": true, "reversed": true, "scoped": true,
	"selected": true, "typemustmatch": true,
}

// listTags get a fixed two-space child indent instead of the positional one.
var listTags = map[string]bool{
	"ul": true, "ol": true, "dl": true,
}

// translateAttrKey canonicalizes framework attribute names to their
// HTML spelling.
func translateAttrKey(key string) string {
	switch key {
	case "className", "classname":
		return "class"
	}
	return key
}

// translateAttrValue canonicalizes boolean literals to lowercase
// markup-boolean spelling and coerces everything else to text.
func translateAttrValue(v any) string {
	switch t := v.(type) {
	case bool:
		if t {
			return "true"
		}
		return "false"
	case string:
		switch t {
		case "True":
			return "true"
		case "False":
			return "false"
		}
		return t
	}
	return coerceString(v)
}

// isTruthy reports whether a prop value counts as set for boolean
// attribute purposes: non-empty strings, nonzero numbers, true.
func isTruthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int8:
		return t != 0
	case int16:
		return t != 0
	case int32:
		return t != 0
	case int64:
		return t != 0
	case uint:
		return t != 0
	case uint8:
		return t != 0
	case uint16:
		return t != 0
	case uint32:
		return t != 0
	case uint64:
		return t != 0
	case float32:
		return t != 0
	case float64:
		return t != 0
	}
	return true
}
