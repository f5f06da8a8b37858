// Package validate checks CML-H5 container metadata against a schema.
//
// The validator walks the fixed three-level hierarchy of a container (root,
// CML devices, channels) and resolves, for every group, each attribute the
// schema declares for that level:
//
//   - missing mandatory attributes are reported
//   - missing optional attributes are skipped
//   - present values are normalized (missing-value tokens such as "NA"
//     become canonical markers) and type checked
//
// Type checking is strict by default: a float attribute must be stored with
// exactly the declared width. A lenient validator accepts any float width.
//
//	reg, err := schema.Default()
//	if err != nil {
//	    return err
//	}
//	tree, errs := validate.NewValidator(reg).Walk(root)
//	for _, e := range errs {
//	    fmt.Println(e)
//	}
//
// Validation is read-only and runs to completion; problems with the data are
// returned as [Errors], never as a failure of the call. Each walk owns its
// result, so independent files may be validated concurrently with a shared
// registry.
package validate
