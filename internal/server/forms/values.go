package forms

import "reflect"

// Values returns the submitted string fields of form keyed by their form
// tag, for redisplay.
func Values(form any) map[string]string {
	out := make(map[string]string)

	v := reflect.ValueOf(form)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return out
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return out
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		key := sf.Tag.Get("form")
		if key == "" || !sf.IsExported() || sf.Type.Kind() != reflect.String {
			continue
		}
		out[key] = v.Field(i).String()
	}
	return out
}
