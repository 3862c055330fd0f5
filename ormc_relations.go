//go:build !wasm

package liteorm

import (
	"sort"

	"github.com/tinywasm/fmt"
)

// RelationInfo describes a one-to-many loader to generate: every child row
// whose foreign key points at one parent row.
type RelationInfo struct {
	ChildStruct string // e.g. "Test"
	ParentTable string // e.g. "game"
	FKField     string // e.g. "GameID"  (Go field name)
	FKColumn    string // e.g. "game_id" (column name)
	LoaderName  string // e.g. "FetchTestByGameID"
	FKFieldType string // e.g. "int64"
}

// ResolveRelations (exported for testing) scans all parent SliceFields,
// finds the matching FK in the child struct, and appends RelationInfo
// to the child's entry in the map.
func (o *Ormc) ResolveRelations(all map[string]StructInfo) {
	// Sort parent names to ensure deterministic relation generation
	var parentNames []string
	for parentName := range all {
		parentNames = append(parentNames, parentName)
	}
	sort.Strings(parentNames)

	for _, parentName := range parentNames {
		parentInfo := all[parentName]
		for _, sliceField := range parentInfo.SliceFields {
			childStructName := sliceField.ElemType
			childInfo, ok := all[childStructName]
			if !ok {
				o.log(fmt.Sprintf("Warning: relation field %s.%s points to unknown struct %s; skipping", parentName, sliceField.Name, childStructName))
				continue
			}

			fkField := findFKField(childInfo, parentInfo.TableName)
			if fkField == nil {
				o.log(fmt.Sprintf("Warning: no FK found in child %s pointing to parent table %s (from %s.%s); skipping relation loader", childStructName, parentInfo.TableName, parentName, sliceField.Name))
				continue
			}

			rel := RelationInfo{
				ChildStruct: childStructName,
				ParentTable: parentInfo.TableName,
				FKField:     fkField.Name,
				FKColumn:    fkField.ColumnName,
				LoaderName:  fmt.Sprintf("Fetch%sBy%s", childStructName, fkField.Name),
				FKFieldType: fkField.GoType,
			}
			childInfo.Relations = append(childInfo.Relations, rel)
			all[childStructName] = childInfo
		}
	}
}

// findFKField returns the first foreign key in child whose Ref matches
// parentTable, or nil if none found.
func findFKField(child StructInfo, parentTable string) *FieldInfo {
	for i := range child.Fields {
		if child.Fields[i].Type == TypeForeignKey && child.Fields[i].Ref == parentTable {
			return &child.Fields[i]
		}
	}
	return nil
}
