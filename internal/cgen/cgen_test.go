package cgen

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/nalgeon/be"
	"github.com/you-not-fish/boron/internal/module"
	"github.com/you-not-fish/boron/internal/resolver"
	"github.com/you-not-fish/boron/internal/rtabi"
)

// link links src as module "app" with deps as its importable modules and
// returns one File per module, dependencies first.
func link(t *testing.T, src string, mode resolver.Mode, deps module.MapLocator) []*File {
	t.Helper()
	entry := module.Source{Path: "app", Filename: "app.bn", Text: []byte(src)}
	units, err := module.Link(entry, deps, &module.Config{Mode: mode})
	be.Err(t, err, nil)

	var files []*File
	for _, u := range units {
		files = append(files, &File{
			Program:    u.Program,
			Info:       u.Info,
			Module:     u.Module,
			Imports:    u.Imports,
			Importable: !u.Entry() || u.Mode == resolver.Library,
		})
	}
	return files
}

// emitMain emits src as an executable without imports.
func emitMain(t *testing.T, src string) string {
	t.Helper()
	files := link(t, src, resolver.Executable, nil)
	out, err := Emit(files[0], nil)
	be.Err(t, err, nil)
	be.Equal(t, out.Header, "")
	return out.Source
}

// contains checks that every line of want appears in got, in order.
func contains(t *testing.T, got string, want ...string) {
	t.Helper()
	rest := got
	for _, w := range want {
		i := strings.Index(rest, w)
		if i < 0 {
			t.Fatalf("missing %q in output:\n%s", w, got)
		}
		rest = rest[i+len(w):]
	}
}

const pointSrc = `
struct Point {
	int x
	int y
}

len(Point p) -> int {
	return p.x * p.x + p.y * p.y
}
`

func TestEmitProgram(t *testing.T) {
	got := emitMain(t, pointSrc+`
main {
	Point p: { x: 3, y: 4 }
	print(p.len())
}
`)
	want := `// Code generated by boronc. DO NOT EDIT.
// Source: app

#include <stdbool.h>

int printf(const char *, ...);

struct Point {
    int x;
    int y;
};

int len(struct Point *p);

int len(struct Point *p) {
    return (p->x * p->x) + (p->y * p->y);
}

int main(void) {
    struct Point p = (struct Point){ .x = 3, .y = 4 };
    printf("%d\n", len(&p));
    return 0;
}
`
	be.Equal(t, got, want)
}

func TestMethodCallLowering(t *testing.T) {
	method := emitMain(t, pointSrc+`
main {
	Point p: { x: 1, y: 2 }
	let n: p.len()
}
`)
	plain := emitMain(t, pointSrc+`
main {
	Point p: { x: 1, y: 2 }
	let n: len(p)
}
`)
	be.Equal(t, method, plain)
	contains(t, method, "int n = len(&p);")
}

func TestDeterministic(t *testing.T) {
	deps := module.MapLocator{"geo/shapes": pointSrc}
	src := "import geo.shapes\n\nmain {\n\tPoint p: { x: 1 , y: 2 }\n\tprint(p.len())\n}\n"

	first := link(t, src, resolver.Executable, deps)
	second := link(t, src, resolver.Executable, deps)
	for i := range first {
		a, err := Emit(first[i], nil)
		be.Err(t, err, nil)
		b, err := Emit(second[i], nil)
		be.Err(t, err, nil)
		be.Equal(t, a, b)
	}
}

func TestStructResult(t *testing.T) {
	got := emitMain(t, pointSrc+`
origin() -> Point {
	Point p: { x: 0, y: 0 }
	return p
}

main {
	let o: origin()
	print(origin().x, o.len())
}
`)
	contains(t, got,
		"struct Point *origin(struct Point *out_);",
		"struct Point *origin(struct Point *out_) {",
		"    struct Point p = (struct Point){ .x = 0, .y = 0 };",
		"    *out_ = p;",
		"    return out_;",
		"struct Point o = *origin(&(struct Point){ 0 });",
		`printf("%d\n", origin(&(struct Point){ 0 })->x);`,
		`printf("%d\n", len(&o));`,
	)
}

func TestStructParams(t *testing.T) {
	got := emitMain(t, pointSrc+`
move(Point p, Point to) {
	p.x: to.x
	p: to
	let q: p
	q.y: 1
	print(len(to), q.len())
}

main {
	Point a: { x: 1, y: 2 }
	move(a, Point{ x: 5, y: 6 })
}
`)
	contains(t, got,
		"void move(struct Point *p, struct Point *to) {",
		"    p->x = to->x;",
		"    *p = *to;",
		"    struct Point q = *p;",
		"    q.y = 1;",
		`    printf("%d\n", len(to));`,
		`    printf("%d\n", len(&q));`,
		"move(&a, &(struct Point){ .x = 5, .y = 6 });",
	)
}

func TestStructTernary(t *testing.T) {
	got := emitMain(t, pointSrc+`
main {
	Point a: { x: 1, y: 2 }
	Point b: { x: 3, y: 4 }
	let c: a.x > 0 ? a | b
	print((a.x > 0 ? a | b).len(), (a.x > 0 ? a | b).y)
}
`)
	contains(t, got,
		"struct Point c = *((a.x > 0) ? &a : &b);",
		`printf("%d\n", len(((a.x > 0) ? &a : &b)));`,
		`printf("%d\n", ((a.x > 0) ? &a : &b)->y);`,
	)
}

func TestNestedFields(t *testing.T) {
	got := emitMain(t, pointSrc+`
struct Line {
	Point from
	Point to
}

width(Line l) -> int {
	return l.to.x - l.from.x
}

main {
	Line l: { to: Point{ x: 4, y: 0 }, from: Point{ x: 1, y: 0 } }
	l.to.y: 3
	print(l.from.len(), width(l))
}
`)
	contains(t, got,
		"    return l->to.x - l->from.x;",
		"struct Line l = (struct Line){ .from = (struct Point){ .x = 1, .y = 0 }, .to = (struct Point){ .x = 4, .y = 0 } };",
		"    l.to.y = 3;",
		`printf("%d\n", len(&l.from));`,
		`printf("%d\n", width(&l));`,
	)
}

func TestStructOrder(t *testing.T) {
	got := emitMain(t, `
struct Line {
	Point from
	Point to
}

struct Point {
	int x
	int y
}

struct Empty {}

main {
	Empty e: {}
}
`)
	contains(t, got,
		"struct Point {",
		"struct Line {",
		"struct Empty {\n    char unused_;\n};",
		"struct Empty e = (struct Empty){ 0 };",
	)
}

func TestLocalStruct(t *testing.T) {
	got := emitMain(t, `
main {
	struct Pair {
		int a
		int b
	}
	Pair p: { b: 2 , a: 1 }
	print(p.a)
}
`)
	contains(t, got,
		"int main(void) {",
		"    struct Pair_1_ {",
		"        int a;",
		"    };",
		"    struct Pair_1_ p = (struct Pair_1_){ .a = 1, .b = 2 };",
	)
}

func TestPrintFormats(t *testing.T) {
	got := emitMain(t, `
main {
	print(1, 2.5, 'a', true, 1 < 2)
}
`)
	contains(t, got,
		`    printf("%d\n", 1);`,
		`    printf("%f\n", 2.5f);`,
		`    printf("%c\n", 'a');`,
		`    printf("%s\n", (true) ? "true" : "false");`,
		`    printf("%s\n", (1 < 2) ? "true" : "false");`,
	)
}

func TestNoPrintNoPrototype(t *testing.T) {
	got := emitMain(t, "main {\n\tlet x: 1\n}\n")
	be.True(t, !strings.Contains(got, rtabi.PrintfProto))
	be.True(t, !strings.Contains(got, "stdio.h"))
}

func TestOperators(t *testing.T) {
	got := emitMain(t, `
main {
	let b: !(1 = 2)
	let n: - -3
	let m: -(1 + 2) * 4
	let t: 1 < 2 ? 1 | 2 > 3 ? 4 | 5
	let f: 3.
	let ne: 1 != 2
	let float g: 1
}
`)
	contains(t, got,
		"    bool b = !(1 == 2);",
		"    int n = -(-3);",
		"    int m = -(1 + 2) * 4;",
		"    int t = (1 < 2) ? 1 : ((2 > 3) ? 4 : 5);",
		"    float f = 3.0f;",
		"    bool ne = 1 != 2;",
		"    float g = 1;",
	)
}

func TestIntLiterals(t *testing.T) {
	got := emitMain(t, `
main {
	let a: -2147483648
	let b: 007
	let c: 000
	print(-2147483648)
}
`)
	contains(t, got,
		"    int a = (-2147483647 - 1);",
		"    int b = 7;",
		"    int c = 0;",
		`    printf("%d\n", (-2147483647 - 1));`,
	)
}

func TestControlFlow(t *testing.T) {
	got := emitMain(t, `
sign(int x) -> int {
	if x > 0 {
		return 1
	} else if x = 0 {
		return 0
	} else {
		return -1
	}
}

main {
	let i: 0
	while i < 3 {
		i: i + 1
	}
	if i = 3 {
		return
	}
}
`)
	contains(t, got,
		"int sign(int x) {",
		"    if (x > 0) {",
		"        return 1;",
		"    } else if (x == 0) {",
		"        return 0;",
		"    } else {",
		"        return -1;",
		"    }",
		"}",
		"    while (i < 3) {",
		"        i = i + 1;",
		"    }",
		"    if (i == 3) {",
		"        return 0;",
		"    }",
		"    return 0;",
	)
}

func TestMangling(t *testing.T) {
	got := emitMain(t, `
struct double {
	int long
}

printf(double unsigned) -> int {
	return unsigned.long
}

main {
	let out_: 1
	double d: { long: out_ }
	print(printf(d))
}
`)
	contains(t, got,
		"struct double_ {",
		"    int long_;",
		"int printf_(struct double_ *unsigned_);",
		"    return unsigned_->long_;",
		"    int out__ = 1;",
		"    struct double_ d = (struct double_){ .long_ = out__ };",
		`    printf("%d\n", printf_(&d));`,
	)
}

func TestLetSelfReference(t *testing.T) {
	got := emitMain(t, `
main {
	let x: 1
	if x > 0 {
		let x: x + 1
		print(x)
	}
}
`)
	contains(t, got,
		"    int x = 1;",
		"        int x_1_ = x + 1;",
		"        int x = x_1_;",
		`        printf("%d\n", x);`,
	)
}

func TestHeader(t *testing.T) {
	deps := module.MapLocator{
		"geo/point": "struct Point {\n\tint x\n\tint y\n}\n",
		"geo/shapes": `
import geo.point

area(Point a, Point b) -> int {
	return (b.x - a.x) * (b.y - a.y)
}
`,
	}
	files := link(t, "import geo.shapes\nimport geo.point\n\nmain {\n\tprint(area(Point{ x: 0, y: 0 }, Point{ x: 2, y: 3 }))\n}\n", resolver.Executable, deps)
	be.Equal(t, len(files), 3)

	point, err := Emit(files[0], nil)
	be.Err(t, err, nil)
	guard := rtabi.Guard("geo/point")
	be.Equal(t, point.Module, "geo/point")
	be.Equal(t, point.Header, `// Code generated by boronc. DO NOT EDIT.
// Source: geo/point

#ifndef `+guard+`
#define `+guard+`

#include <stdbool.h>

struct Point {
    int x;
    int y;
};

#endif // `+guard+`
`)
	be.Equal(t, point.Source, `// Code generated by boronc. DO NOT EDIT.
// Source: geo/point

#include <stdbool.h>
#include "geo/point.h"
`)

	shapes, err := Emit(files[1], nil)
	be.Err(t, err, nil)
	contains(t, shapes.Header,
		"#ifndef "+rtabi.Guard("geo/shapes"),
		"#include <stdbool.h>",
		`#include "geo/point.h"`,
		"int area(struct Point *a, struct Point *b);",
		"#endif",
	)
	be.True(t, !strings.Contains(shapes.Header, "struct Point {"))
	contains(t, shapes.Source,
		`#include "geo/point.h"`,
		`#include "geo/shapes.h"`,
		"int area(struct Point *a, struct Point *b) {",
		"    return (b->x - a->x) * (b->y - a->y);",
	)

	app, err := Emit(files[2], nil)
	be.Err(t, err, nil)
	be.Equal(t, app.Header, "")
	contains(t, app.Source,
		`#include "geo/shapes.h"`,
		`#include "geo/point.h"`,
		`printf("%d\n", area(&(struct Point){ .x = 0, .y = 0 }, &(struct Point){ .x = 2, .y = 3 }));`,
	)
}

func TestLibraryEntry(t *testing.T) {
	files := link(t, pointSrc, resolver.Library, nil)
	out, err := Emit(files[0], nil)
	be.Err(t, err, nil)
	contains(t, out.Header, "struct Point {", "int len(struct Point *p);")
	contains(t, out.Source, `#include "app.h"`, "int len(struct Point *p) {")
	be.True(t, !strings.Contains(out.Source, "struct Point {"))
}

func TestTimestamp(t *testing.T) {
	files := link(t, "main {\n}\n", resolver.Executable, nil)
	ts := time.Date(2024, time.March, 5, 7, 8, 9, 0, time.UTC)

	out, err := Emit(files[0], &Config{Timestamp: ts})
	be.Err(t, err, nil)
	contains(t, out.Source,
		"// Source: app\n// Created on 2024-03-05 at 07:08:09\n",
	)

	out, err = Emit(files[0], &Config{})
	be.Err(t, err, nil)
	be.True(t, !strings.Contains(out.Source, "Created on"))
}

func TestWriteHeaderNotImportable(t *testing.T) {
	files := link(t, "main {\n}\n", resolver.Executable, nil)
	var buf bytes.Buffer
	err := WriteHeader(&buf, files[0], nil)
	be.Err(t, err, "not importable")
}

func TestCharLit(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a", `'a'`},
		{" ", `' '`},
		{"\n", `'\n'`},
		{"\t", `'\t'`},
		{"\r", `'\r'`},
		{"\x00", `'\0'`},
		{"\\", `'\\'`},
		{"'", `'\''`},
		{"\x01", `'\x01'`},
		{"\x7f", `'\x7f'`},
		{`"`, `'"'`},
	}
	for _, tt := range tests {
		be.Equal(t, charLit(tt.in), tt.want)
	}
}
