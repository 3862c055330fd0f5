package liteorm

import "fmt"

func validate(table string, fields []Field) error {
	if table == "" {
		return ErrEmptyTable
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: %s declares no fields", ErrValidation, table)
	}

	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("%w: %s has a field without a name", ErrValidation, table)
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: %s declares field %q twice", ErrValidation, table, f.Name)
		}
		seen[f.Name] = true

		if f.Type == TypeForeignKey {
			if f.Ref == "" {
				return fmt.Errorf("%w: foreign key %s.%s has no referenced table", ErrValidation, table, f.Name)
			}
			if !f.OnDelete.Valid() {
				return fmt.Errorf("%w: foreign key %s.%s has unknown ON DELETE action %q", ErrValidation, table, f.Name, f.OnDelete)
			}
		}
	}
	return nil
}

// validateConditions rejects predicates on columns the model does not declare.
func validateConditions(table string, columns map[string]int, conds []Condition) error {
	for _, c := range conds {
		if _, ok := columns[c.field]; !ok {
			return fmt.Errorf("%w: %s has no column %q", ErrUnknownColumn, table, c.field)
		}
	}
	return nil
}
