package generate

import (
	"path/filepath"

	. "github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"
)

// Canonical unit names in ascending granularity order. The Unit constants,
// the name table and the lookup helpers are all derived from this list.
var unitNames = []string{
	"nanosecond",
	"microsecond",
	"millisecond",
	"second",
	"minute",
	"hour",
	"day",
	"week",
	"month",
	"year",
}

const intervalPkg = "github.com/lagoonql/interval-toolbox-go/interval"

// GenerateUnits writes the unit table file unit_gen.go into dir.
func GenerateUnits(dir string) error {
	f := NewFilePathName(intervalPkg, "interval")
	f.HeaderComment("Code generated by internal/cmd/generate. DO NOT EDIT.")

	f.Comment("Units of the interval domain, ordered from finest to coarsest.")
	f.Const().DefsFunc(func(g *Group) {
		for i, name := range unitNames {
			if i == 0 {
				g.Id(constName(name)).Id("Unit").Op("=").Iota()
			} else {
				g.Id(constName(name))
			}
		}
	})

	f.Var().Id("unitNames").Op("=").Index(Op("...")).String().ValuesFunc(func(g *Group) {
		for _, name := range unitNames {
			g.Lit(name)
		}
	})

	f.Comment("String returns the canonical lowercase unit name.")
	f.Func().Params(Id("u").Id("Unit")).Id("String").Params().String().Block(
		If(Int().Call(Id("u")).Op("<").Len(Id("unitNames"))).Block(
			Return(Id("unitNames").Index(Id("u"))),
		),
		Return(Qual("fmt", "Sprintf").Call(Lit("unit(%d)"), Uint8().Call(Id("u")))),
	)

	f.Comment("ParseUnit returns the unit with the given canonical name.")
	f.Func().Id("ParseUnit").Params(Id("s").String()).Params(Id("Unit"), Error()).Block(
		For(List(Id("u"), Id("name")).Op(":=").Range().Id("unitNames")).Block(
			If(Id("name").Op("==").Id("s")).Block(
				Return(Id("Unit").Call(Id("u")), Nil()),
			),
		),
		Return(Lit(0), Op("&").Id("SyntaxError").Values(Dict{
			Id("Input"): Id("s"),
			Id("Msg"):   Lit("unknown time unit"),
		})),
	)

	f.Comment("Units lists every unit in ascending granularity order.")
	f.Func().Id("Units").Params().Index().Id("Unit").Block(
		Id("units").Op(":=").Make(Index().Id("Unit"), Len(Id("unitNames"))),
		For(Id("i").Op(":=").Range().Id("units")).Block(
			Id("units").Index(Id("i")).Op("=").Id("Unit").Call(Id("i")),
		),
		Return(Id("units")),
	)

	return f.Save(filepath.Join(dir, "unit_gen.go"))
}

func constName(unit string) string {
	return "Unit" + strcase.ToCamel(unit)
}
