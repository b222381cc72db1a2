package augment

import (
	"sort"
	"strings"
	"testing"
)

func contains(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}

func TestGenerateVariants(t *testing.T) {
	t.Parallel()

	got := Generate("order_status", []string{"track my order"}, 0)

	wantPresent := []string{
		"How track my order",
		"Can you track my order",
		"Could you track my order",
		"Please track my order",
		"track my order please",
	}
	for _, want := range wantPresent {
		if !contains(got, want) {
			t.Fatalf("variants %v missing %q", got, want)
		}
	}
}

func TestGenerateSkipsQuestionPrefixForInterrogatives(t *testing.T) {
	t.Parallel()

	got := Generate("order_status", []string{"where is my order"}, 0)
	for _, variant := range got {
		if strings.HasPrefix(variant, "How where") ||
			strings.HasPrefix(variant, "Can you where") ||
			strings.HasPrefix(variant, "Could you where") {
			t.Fatalf("question prefix added to an interrogative query: %q", variant)
		}
	}
	if !contains(got, "Please where is my order") {
		t.Fatalf("politeness variants missing: %v", got)
	}
}

func TestGenerateInformalSubstitutions(t *testing.T) {
	t.Parallel()

	got := Generate("billing", []string{"can you check your balance"}, 0)
	if !contains(got, "can u check ur balance") {
		t.Fatalf("informal variant missing: %v", got)
	}
}

func TestGenerateDeduplicatesAndSorts(t *testing.T) {
	t.Parallel()

	got := Generate("billing", []string{"reset password", "reset password"}, 0)
	if !sort.StringsAreSorted(got) {
		t.Fatalf("variants not sorted: %v", got)
	}
	seen := map[string]struct{}{}
	for _, variant := range got {
		if _, dup := seen[variant]; dup {
			t.Fatalf("duplicate variant %q", variant)
		}
		seen[variant] = struct{}{}
	}
}

func TestGenerateCountCaps(t *testing.T) {
	t.Parallel()

	got := Generate("billing", []string{"reset password"}, 2)
	if len(got) != 2 {
		t.Fatalf("count cap not applied: %v", got)
	}
}

func TestGenerateEmptyInput(t *testing.T) {
	t.Parallel()

	if got := Generate("billing", nil, 0); len(got) != 0 {
		t.Fatalf("variants from no base queries: %v", got)
	}
	if got := Generate("billing", []string{"  "}, 0); len(got) != 0 {
		t.Fatalf("variants from a blank query: %v", got)
	}
}
