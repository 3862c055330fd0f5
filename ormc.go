//go:build !wasm

package liteorm

import (
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tinywasm/fmt"
)

// FieldInfo is one mapped struct field as read from source.
type FieldInfo struct {
	Name       string // Go field name
	ColumnName string
	Type       FieldType
	IsPK       bool
	Null       bool
	Unique     string // "", "true" or "false": empty keeps the field type default
	MaxLength  int
	AutoNow    bool
	Default    string // Go expression passed to liteorm.Default
	Ref        string
	OnDelete   OnDelete
	GoType     string // element type for pointer fields
}

// SliceFieldInfo records a slice-of-struct field found in a parent struct.
// Not DB-mapped; used only for relation resolution.
type SliceFieldInfo struct {
	Name     string // e.g. "Tests"
	ElemType string // e.g. "Test"
}

type StructInfo struct {
	Name              string
	TableName         string
	PackageName       string
	Fields            []FieldInfo
	TableNameDeclared bool
	SourceFile        string
	SliceFields       []SliceFieldInfo // populated by ParseStruct; used by ResolveRelations
	Relations         []RelationInfo   // populated by ResolveRelations; used by GenerateForFile
}

var onDeleteTags = map[string]OnDelete{
	"cascade":     Cascade,
	"restrict":    Restrict,
	"no_action":   NoAction,
	"set_null":    SetNull,
	"set_default": SetDefault,
}

// detectTableName scans the AST for func (X) TableName() string on structName.
// Returns the literal return value if found, "" otherwise.
func detectTableName(node *ast.File, structName string) string {
	for _, decl := range node.Decls {
		funcDecl, ok := decl.(*ast.FuncDecl)
		if !ok || funcDecl.Recv == nil || len(funcDecl.Recv.List) == 0 {
			continue
		}
		if funcDecl.Name.Name != "TableName" {
			continue
		}
		recv := funcDecl.Recv.List[0].Type
		recvName := ""
		if ident, ok := recv.(*ast.Ident); ok {
			recvName = ident.Name
		} else if star, ok := recv.(*ast.StarExpr); ok {
			if ident, ok := star.X.(*ast.Ident); ok {
				recvName = ident.Name
			}
		}
		if recvName != structName {
			continue
		}
		if funcDecl.Body != nil && len(funcDecl.Body.List) == 1 {
			if ret, ok := funcDecl.Body.List[0].(*ast.ReturnStmt); ok && len(ret.Results) == 1 {
				if lit, ok := ret.Results[0].(*ast.BasicLit); ok {
					return fmt.Convert(lit.Value).TrimPrefix(`"`).TrimSuffix(`"`).String()
				}
			}
		}
	}
	return ""
}

func typeString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.SelectorExpr:
		if pkgIdent, ok := t.X.(*ast.Ident); ok {
			return pkgIdent.Name + "." + t.Sel.Name
		}
	case *ast.StarExpr:
		if elem := typeString(t.X); elem != "" {
			return "*" + elem
		}
	}
	return ""
}

// ParseStruct parses a single struct from a Go file and returns its metadata.
func (o *Ormc) ParseStruct(structName string, goFile string) (StructInfo, error) {
	if structName == "" {
		return StructInfo{}, fmt.Err("Please provide a struct name")
	}

	if goFile == "" {
		return StructInfo{}, fmt.Err("goFile path cannot be empty")
	}

	fset := token.NewFileSet()
	node, err := parser.ParseFile(fset, goFile, nil, parser.ParseComments)
	if err != nil {
		return StructInfo{}, fmt.Err(err, "Failed to parse file")
	}

	var targetStruct *ast.StructType
	ast.Inspect(node, func(n ast.Node) bool {
		if typeSpec, ok := n.(*ast.TypeSpec); ok && typeSpec.Name.Name == structName {
			if structType, ok := typeSpec.Type.(*ast.StructType); ok {
				targetStruct = structType
				return false
			}
		}
		return true
	})

	if targetStruct == nil {
		return StructInfo{}, fmt.Err("Struct not found in file")
	}

	tableName := detectTableName(node, structName)
	declared := tableName != ""
	if !declared {
		tableName = strings.ToLower(structName)
	}

	info := StructInfo{
		Name:              structName,
		TableName:         tableName,
		PackageName:       node.Name.Name,
		TableNameDeclared: declared,
	}

	pkFound := false
	for _, field := range targetStruct.Fields.List {
		if len(field.Names) == 0 {
			continue // Anonymous field, skip for now
		}

		fieldName := field.Names[0].Name
		if !ast.IsExported(fieldName) {
			continue
		}

		dbTag := ""
		if field.Tag != nil {
			tagVal := fmt.Convert(field.Tag.Value).TrimPrefix("`").TrimSuffix("`").String()
			for _, p := range fmt.Convert(tagVal).Split(" ") {
				if fmt.HasPrefix(p, "db:\"") {
					dbTag = fmt.Convert(p).TrimPrefix(`db:"`).TrimSuffix(`"`).String()
					break
				}
			}
		}

		if dbTag == "-" {
			continue
		}

		// []Struct fields feed relation resolution only
		if arr, ok := field.Type.(*ast.ArrayType); ok {
			if eltIdent, ok := arr.Elt.(*ast.Ident); ok && eltIdent.Name != "byte" {
				info.SliceFields = append(info.SliceFields, SliceFieldInfo{
					Name:     fieldName,
					ElemType: eltIdent.Name,
				})
			}
			continue
		}

		typeStr := typeString(field.Type)
		pointer := fmt.HasPrefix(typeStr, "*")
		if pointer {
			typeStr = typeStr[1:]
		}

		var fieldType FieldType
		switch typeStr {
		case "string":
			fieldType = TypeChar
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fieldType = TypeInteger
		case "time.Time":
			fieldType = TypeDateTime
		default:
			o.log(fmt.Sprintf("Warning: unsupported type %s for field %s.%s; skipping. Add db:\"-\" to suppress.", typeStr, structName, fieldName))
			continue
		}

		fi := FieldInfo{
			Name:       fieldName,
			ColumnName: columnName(fieldName),
			Type:       fieldType,
			GoType:     typeStr,
			Null:       pointer,
		}

		if fieldName == "ID" && !pkFound && fieldType == TypeInteger {
			fi.IsPK = true
			pkFound = true
		}

		for _, p := range tagOptions(dbTag) {
			switch {
			case p == "pk":
				fi.IsPK = true
				pkFound = true
			case p == "null":
				fi.Null = true
			case p == "unique":
				fi.Unique = "true"
			case p == "nounique":
				fi.Unique = "false"
			case p == "auto_now":
				if fieldType != TypeDateTime {
					return StructInfo{}, fmt.Err("auto_now only allowed on time.Time fields")
				}
				fi.AutoNow = true
			case fmt.HasPrefix(p, "name="):
				fi.ColumnName = fmt.Convert(p).TrimPrefix("name=").String()
			case fmt.HasPrefix(p, "max="):
				n, err := strconv.Atoi(fmt.Convert(p).TrimPrefix("max=").String())
				if err != nil || n <= 0 {
					return StructInfo{}, fmt.Err("invalid max length for field", fieldName)
				}
				fi.MaxLength = n
			case fmt.HasPrefix(p, "default="):
				lit, err := defaultExpr(fieldType, fmt.Convert(p).TrimPrefix("default=").String())
				if err != nil {
					return StructInfo{}, fmt.Err(err, "invalid default for field", fieldName)
				}
				fi.Default = lit
			case fmt.HasPrefix(p, "ref="):
				fi.Ref = fmt.Convert(p).TrimPrefix("ref=").String()
			case fmt.HasPrefix(p, "ondelete="):
				action, ok := onDeleteTags[fmt.Convert(p).TrimPrefix("ondelete=").String()]
				if !ok {
					return StructInfo{}, fmt.Err("unknown ondelete action for field", fieldName)
				}
				fi.OnDelete = action
			}
		}

		if fi.Ref != "" {
			if fieldType != TypeInteger {
				return StructInfo{}, fmt.Err("ref only allowed on integer fields")
			}
			fi.Type = TypeForeignKey
			fi.IsPK = false
			if fi.OnDelete == "" {
				fi.OnDelete = NoAction
			}
		}

		info.Fields = append(info.Fields, fi)
	}

	return info, nil
}

// defaultExpr turns a tag default into the Go expression given to liteorm.Default.
func defaultExpr(t FieldType, raw string) (string, error) {
	switch t {
	case TypeInteger:
		if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
			return "", err
		}
		return raw, nil
	case TypeDateTime:
		return "liteorm.Expr(" + strconv.Quote(raw) + ")", nil
	}
	return strconv.Quote(raw), nil
}

var onDeleteIdents = map[OnDelete]string{
	Cascade:    "liteorm.Cascade",
	Restrict:   "liteorm.Restrict",
	NoAction:   "liteorm.NoAction",
	SetNull:    "liteorm.SetNull",
	SetDefault: "liteorm.SetDefault",
}

// fieldExpr renders the liteorm constructor call of one field.
func fieldExpr(f FieldInfo) string {
	if f.Type == TypeForeignKey {
		return "liteorm.ForeignKeyField(" + strconv.Quote(f.ColumnName) + ", liteorm.Ref(" + strconv.Quote(f.Ref) + "), " + onDeleteIdents[f.OnDelete] + ")"
	}

	ctor := "liteorm.IntegerField"
	switch f.Type {
	case TypeChar:
		ctor = "liteorm.CharField"
	case TypeDateTime:
		ctor = "liteorm.DateTimeField"
	}

	args := []string{strconv.Quote(f.ColumnName)}
	if f.IsPK {
		args = append(args, "liteorm.PrimaryKey()")
	}
	if f.Null {
		args = append(args, "liteorm.Null()")
	}
	if f.Unique != "" {
		args = append(args, "liteorm.Unique("+f.Unique+")")
	}
	if f.MaxLength > 0 {
		args = append(args, "liteorm.MaxLength("+strconv.Itoa(f.MaxLength)+")")
	}
	if f.AutoNow {
		args = append(args, "liteorm.AutoNow()")
	}
	if f.Default != "" {
		args = append(args, "liteorm.Default("+f.Default+")")
	}
	return ctor + "(" + strings.Join(args, ", ") + ")"
}

// GenerateForStruct reads the Go File and generates the schema declaration for a given struct name.
func (o *Ormc) GenerateForStruct(structName string, goFile string) error {
	info, err := o.ParseStruct(structName, goFile)
	if err != nil {
		return err
	}
	if len(info.Fields) == 0 {
		return nil
	}
	return o.GenerateForFile([]StructInfo{info}, goFile)
}

// GenerateForFile writes schema declarations for all infos into one file.
func (o *Ormc) GenerateForFile(infos []StructInfo, sourceFile string) error {
	if len(infos) == 0 {
		return nil
	}
	buf := fmt.Convert()

	hasRelations := false
	for _, info := range infos {
		if len(info.Relations) > 0 {
			hasRelations = true
		}
	}

	buf.Write("// Code generated by ormc; DO NOT EDIT.\n")
	buf.Write("// NOTE: field order is the row binding order of Fetch.\n\n")
	buf.Write(fmt.Sprintf("package %s\n\n", infos[0].PackageName))

	buf.Write("import (\n")
	if hasRelations {
		buf.Write("\t\"context\"\n\n")
	}
	buf.Write("\t\"github.com/tinywasm/liteorm\"\n")
	buf.Write(")\n\n")

	for _, info := range infos {
		buf.Write(fmt.Sprintf("// %sModel is the registered schema of %s.\n", info.Name, info.Name))
		buf.Write(fmt.Sprintf("var %sModel = liteorm.MustDefine[%s](\n", info.Name, info.Name))
		for _, f := range info.Fields {
			buf.Write("\t" + fieldExpr(f) + ",\n")
		}
		buf.Write(")\n\n")

		// Metadata Descriptors
		buf.Write(fmt.Sprintf("var %sMeta = struct {\n", info.Name))
		buf.Write("\tTableName string\n")
		for _, f := range info.Fields {
			buf.Write(fmt.Sprintf("\t%s string\n", f.Name))
		}
		buf.Write("}{\n")
		buf.Write(fmt.Sprintf("\tTableName: %s,\n", strconv.Quote(info.TableName)))
		for _, f := range info.Fields {
			buf.Write(fmt.Sprintf("\t%s: %s,\n", f.Name, strconv.Quote(f.ColumnName)))
		}
		buf.Write("}\n\n")

		for _, rel := range info.Relations {
			buf.Write(fmt.Sprintf(
				"// %s retrieves all %s records for a given parent ID.\n"+
					"// Generated by ormc from db:\"ref=%s\".\n"+
					"func %s(ctx context.Context, exec liteorm.Executor, parentID %s) ([]*%s, error) {\n"+
					"\treturn %sModel.Objects(exec).Filter(liteorm.Eq(%sMeta.%s, parentID)).Fetch(ctx)\n"+
					"}\n\n",
				rel.LoaderName, rel.ChildStruct, rel.ParentTable,
				rel.LoaderName, rel.FKFieldType, rel.ChildStruct,
				rel.ChildStruct, rel.ChildStruct, rel.FKField,
			))
		}
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Err(err, "generated code does not parse")
	}

	outName := fmt.Convert(sourceFile).TrimSuffix(".go").String() + "_orm.go"
	return os.WriteFile(outName, src, 0644)
}

// collectAllStructs walks rootDir and returns a map of all parsed StructInfo
// keyed by struct name. Used by Run() Pass 1.
func (o *Ormc) collectAllStructs() (map[string]StructInfo, []string, []string, error) {
	all := make(map[string]StructInfo)
	var structOrder []string
	var fileOrder []string
	fileSeen := make(map[string]bool)

	err := filepath.Walk(o.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			dirName := info.Name()
			if dirName == "vendor" || dirName == ".git" || dirName == "testdata" {
				return filepath.SkipDir
			}
			return nil
		}

		fileName := info.Name()
		if fileName != "model.go" && fileName != "models.go" {
			return nil
		}

		fset := token.NewFileSet()
		node, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if err != nil {
			return nil // Skip unparseable files
		}

		for _, decl := range node.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				if _, ok := typeSpec.Type.(*ast.StructType); !ok {
					continue
				}
				info, err := o.ParseStruct(typeSpec.Name.Name, path)
				if err != nil {
					o.log(fmt.Sprintf("Skipping %s in %s: %v", typeSpec.Name.Name, path, err))
					continue
				}
				if len(info.Fields) == 0 {
					o.log(fmt.Sprintf("Warning: %s has no mappable fields; skipping", typeSpec.Name.Name))
					continue
				}
				info.SourceFile = path
				all[info.Name] = info
				structOrder = append(structOrder, info.Name)
				if !fileSeen[path] {
					fileSeen[path] = true
					fileOrder = append(fileOrder, path)
				}
			}
		}
		return nil
	})

	return all, structOrder, fileOrder, err
}

// generateAll groups the enriched all map by source file path and calls
// GenerateForFile once per file.
func (o *Ormc) generateAll(all map[string]StructInfo, structOrder []string, fileOrder []string) error {
	byFile := make(map[string][]StructInfo)
	for _, structName := range structOrder {
		info := all[structName]
		byFile[info.SourceFile] = append(byFile[info.SourceFile], info)
	}

	for _, sourceFile := range fileOrder {
		infos := byFile[sourceFile]
		if len(infos) > 0 {
			if err := o.GenerateForFile(infos, sourceFile); err != nil {
				o.log(fmt.Sprintf("Failed to write output for %s: %v", sourceFile, err))
			}
		}
	}
	return nil
}

// Run is the entry point for the CLI tool.
func (o *Ormc) Run() error {
	// Pass 1: collect all structs across all model files
	all, structOrder, fileOrder, err := o.collectAllStructs()
	if err != nil {
		return fmt.Err(err, "error walking directory")
	}
	if len(all) == 0 {
		return fmt.Err("no models found")
	}

	// Pass 2: resolve FK loaders
	o.ResolveRelations(all)

	// Pass 3: generate (group by source file, call GenerateForFile once per file)
	return o.generateAll(all, structOrder, fileOrder)
}
