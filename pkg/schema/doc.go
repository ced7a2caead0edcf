// Package schema reads validation rules from YAML or JSON files and
// decodes JSON documents that can be validated against them.
//
// A rule file lists types, their parents and their property rules:
//
//	types:
//	  - name: entity
//	    properties:
//	      - name: id
//	        rules:
//	          - kind: uuid
//	  - name: user
//	    extends: [entity]
//	    properties:
//	      - name: name
//	        rules:
//	          - kind: required
//	          - {kind: minLength, length: 2}
//	      - name: age
//	        rules:
//	          - {kind: range, min: 18, max: 120, message: "adults only"}
//
// Apply registers the rules with a validator.Registry. Documents decoded
// with DecodeDocument carry the type name they were decoded for, so the
// validator looks up the right rules:
//
//	s, err := schema.LoadFile(ctx, "rules.yaml")
//	if err != nil {
//		return err
//	}
//	reg := validator.NewRegistry()
//	if err := s.Apply(reg); err != nil {
//		return err
//	}
//	doc, err := schema.DecodeDocument(r.Body, "user", reg.Properties("user"))
//	res := validator.New(validator.WithRegistry(reg)).Validate(doc)
//
// Unknown rule kinds are kept as custom rules; they need a check registered
// on the evaluator to have any effect.
package schema
