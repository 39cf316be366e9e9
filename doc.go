// Package yang loads named resource tables from YAML (or JSON) documents
// and checks the shape of their records.
//
// Package yang provides:
//
// - A Loader that reads one document per collection from a directory
// - Record: required Id/Name fields plus an open property bag of Values
// - Depth validation reporting every offending property as ErrorInfos
// - Best-effort typed extraction with Get/GetAsList (absence on failure)
//
// Depth rule: a property value may be a scalar or a sequence of scalars.
// A mapping value, or a sequence with a mapping anywhere inside an
// element, is reported. The finding for a sequence points at the first
// offending element.
//
// Typical usage:
//
//	l := yang.NewLoader()
//	if err := l.Load("resources", []string{"monster", "item"}); err != nil {
//		var le *yang.LoadError
//		errors.As(err, &le)
//	}
//	records, _ := l.Get("monster")
//	for _, r := range records {
//		if err := r.Validate(); err != nil {
//			es, _ := yang.AsErrorInfos(err)
//			_ = es
//			continue
//		}
//		hp, ok := yang.Get[int](r, "Hp")
//		drops := yang.GetAsList[string](r, "Drops")
//	}
package yang
