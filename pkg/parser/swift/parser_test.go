package swift_test

import (
	"context"
	"errors"
	"testing"

	swiftparser "github.com/yaklabco/goswiftlint/pkg/parser/swift"
	"github.com/yaklabco/goswiftlint/pkg/swast"
)

func parse(t *testing.T, source string) *swast.FileSnapshot {
	t.Helper()

	file, err := swiftparser.NewParser().Parse(context.Background(), "test.swift", []byte(source))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return file
}

func TestParseDeclKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		kind   swast.NodeKind
	}{
		{"import", "import Foundation\n", swast.KindImportDecl},
		{"typealias", "typealias ID = String\n", swast.KindTypealiasDecl},
		{"variable", "var count = 0\n", swast.KindVariableDecl},
		{"constant", "let name: String\n", swast.KindVariableDecl},
		{"function", "func run() {}\n", swast.KindFunctionDecl},
		{"initializer", "init(x: Int) {}\n", swast.KindFunctionDecl},
		{"class", "class Service {}\n", swast.KindClassDecl},
		{"struct", "struct Point {}\n", swast.KindStructDecl},
		{"enum", "enum State {}\n", swast.KindEnumDecl},
		{"protocol", "protocol Runnable {}\n", swast.KindProtocolDecl},
		{"actor", "actor Cache {}\n", swast.KindActorDecl},
		{"extension", "extension String {}\n", swast.KindExtensionDecl},
		{"expression statement", "print(\"hello\")\n", swast.KindStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			file := parse(t, tt.source)
			if file.Root.Kind != swast.KindSourceFile {
				t.Fatalf("root kind = %v, want SourceFile", file.Root.Kind)
			}

			first := file.Root.FirstChild
			if first == nil {
				t.Fatal("no declarations parsed")
			}
			if first.Kind != tt.kind {
				t.Errorf("decl kind = %v, want %v", first.Kind, tt.kind)
			}
		})
	}
}

func TestParseVariableClauses(t *testing.T) {
	t.Parallel()

	file := parse(t, "var total: Int = 42\n")

	decl := file.Root.ChildOfKind(swast.KindVariableDecl)
	if decl == nil {
		t.Fatal("no variable decl")
	}

	ann := decl.ChildOfKind(swast.KindTypeAnnotation)
	if ann == nil {
		t.Fatal("no type annotation child")
	}
	if got := string(ann.Text()); got != ": Int" {
		t.Errorf("annotation text = %q, want %q", got, ": Int")
	}

	initClause := decl.ChildOfKind(swast.KindInitializerClause)
	if initClause == nil {
		t.Fatal("no initializer clause child")
	}
	if got := string(initClause.Text()); got != "= 42" {
		t.Errorf("initializer text = %q, want %q", got, "= 42")
	}
}

func TestParseNestedMembers(t *testing.T) {
	t.Parallel()

	source := `struct Outer {
    var x: Int
    func method() {
        helper()
    }
    struct Inner {
        let y = 1
    }
}
`
	file := parse(t, source)

	outer := file.Root.ChildOfKind(swast.KindStructDecl)
	if outer == nil {
		t.Fatal("no outer struct")
	}

	members := outer.ChildOfKind(swast.KindMemberBlock)
	if members == nil {
		t.Fatal("no member block")
	}

	var kinds []swast.NodeKind
	for child := members.FirstChild; child != nil; child = child.Next {
		kinds = append(kinds, child.Kind)
	}

	want := []swast.NodeKind{
		swast.KindVariableDecl,
		swast.KindFunctionDecl,
		swast.KindStructDecl,
	}
	if len(kinds) != len(want) {
		t.Fatalf("member kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("member %d: got %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestParseModifiersAndAttributes(t *testing.T) {
	t.Parallel()

	sources := []struct {
		source string
		kind   swast.NodeKind
	}{
		{"public final class A {}\n", swast.KindClassDecl},
		{"@objc private func f() {}\n", swast.KindFunctionDecl},
		{"private(set) var x = 1\n", swast.KindVariableDecl},
		{"@available(iOS 15, *) struct S {}\n", swast.KindStructDecl},
		{"static let shared = Service()\n", swast.KindVariableDecl},
	}

	for _, tt := range sources {
		file := parse(t, tt.source)
		first := file.Root.FirstChild
		if first == nil || first.Kind != tt.kind {
			got := swast.NodeKind(0)
			if first != nil {
				got = first.Kind
			}
			t.Errorf("source %q: decl kind = %v, want %v", tt.source, got, tt.kind)
		}
	}
}

func TestParseGenericsAndInheritance(t *testing.T) {
	t.Parallel()

	file := parse(t, "class Box<T: Equatable>: Base, Proto where T: Hashable {\n    var value: T\n}\n")

	box := file.Root.ChildOfKind(swast.KindClassDecl)
	if box == nil {
		t.Fatal("no class decl")
	}
	members := box.ChildOfKind(swast.KindMemberBlock)
	if members == nil {
		t.Fatal("generic clause or inheritance broke member block parsing")
	}
	if members.ChildOfKind(swast.KindVariableDecl) == nil {
		t.Error("member variable not parsed")
	}
}

func TestParseUnbalancedBraces(t *testing.T) {
	t.Parallel()

	_, err := swiftparser.NewParser().Parse(context.Background(), "bad.swift", []byte("struct S {\n    var x = 1\n"))
	if err == nil {
		t.Fatal("expected error for unbalanced braces")
	}

	var perr *swiftparser.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Path != "bad.swift" {
		t.Errorf("error path = %q, want bad.swift", perr.Path)
	}
}

func TestParseCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := swiftparser.NewParser().Parse(ctx, "test.swift", []byte("let x = 1\n"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestParseRoundTripInvariant(t *testing.T) {
	t.Parallel()

	source := "import UIKit\n\n// view controller\nfinal class VC: UIViewController {\n    override func viewDidLoad() {\n        super.viewDidLoad()   \n    }\n}\n"
	file := parse(t, source)

	if got := string(file.Serialize()); got != source {
		t.Errorf("serialize mismatch:\n got: %q\nwant: %q", got, source)
	}
}

func TestParseTokenSpansContiguous(t *testing.T) {
	t.Parallel()

	file := parse(t, "struct A {}\nstruct B {}\n")

	// Children of the root must cover the token stream in order without
	// overlap.
	prevEnd := -1
	for child := file.Root.FirstChild; child != nil; child = child.Next {
		if child.FirstToken <= prevEnd {
			t.Errorf("node %v starts at token %d, overlapping previous end %d",
				child.Kind, child.FirstToken, prevEnd)
		}
		prevEnd = child.LastToken
	}
}
