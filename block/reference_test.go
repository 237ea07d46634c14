package block

import "testing"

func TestScanReferenceDefinitionBasic(t *testing.T) {
	label, dest, title, hasTitle, consumed, ok := scanReferenceDefinition(`[foo]: /bar "baz"` + "\ntrailing")
	if !ok {
		t.Fatal("expected ok")
	}
	if label != "foo" || dest != "/bar" || title != "baz" || !hasTitle {
		t.Fatalf("got label=%q dest=%q title=%q hasTitle=%v", label, dest, title, hasTitle)
	}
	if consumed != len(`[foo]: /bar "baz"`) {
		t.Fatalf("consumed = %d, want %d", consumed, len(`[foo]: /bar "baz"`))
	}
}

func TestScanReferenceDefinitionAngleBracketDestination(t *testing.T) {
	// The destination scan stops at the first space regardless of the
	// angle brackets, matching the teacher's own byte-for-byte scan, so
	// "url>" is left after the destination and the line is rejected.
	_, dest, _, _, _, ok := scanReferenceDefinition("[foo]: <my url>\n")
	if ok {
		t.Fatal("expected not ok")
	}
	if dest != "" {
		t.Fatalf("dest = %q, want %q", dest, "")
	}
}

func TestScanReferenceDefinitionTitleOnSecondLine(t *testing.T) {
	_, dest, title, hasTitle, _, ok := scanReferenceDefinition("[foo]: /bar\n  \"baz\"\n")
	if !ok {
		t.Fatal("expected ok")
	}
	if dest != "/bar" || title != "baz" || !hasTitle {
		t.Fatalf("got dest=%q title=%q hasTitle=%v", dest, title, hasTitle)
	}
}

func TestScanReferenceDefinitionRejectsMissingColon(t *testing.T) {
	_, _, _, _, _, ok := scanReferenceDefinition("[foo] /bar\n")
	if ok {
		t.Fatal("expected not ok")
	}
}

func TestScanReferenceDefinitionRejectsGarbageAfterDestination(t *testing.T) {
	_, _, _, _, _, ok := scanReferenceDefinition("[foo]: /bar garbage\n")
	if ok {
		t.Fatal("expected not ok")
	}
}

func TestScanReferenceDefinitionRejectsNonBracketStart(t *testing.T) {
	_, _, _, _, _, ok := scanReferenceDefinition("not a reference\n")
	if ok {
		t.Fatal("expected not ok")
	}
}
