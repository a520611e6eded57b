package doctor

import "testing"

func requireResultByCheckName(t *testing.T, results []Result, checkName string) Result {
	t.Helper()
	var found *Result
	for _, result := range results {
		if result.CheckName == checkName {
			if found != nil {
				t.Fatalf("multiple %s results in %#v", checkName, results)
			}
			copyResult := result
			found = &copyResult
		}
	}
	if found == nil {
		t.Fatalf("missing %s result in %#v", checkName, results)
	}
	return *found
}

func requireNoStatus(t *testing.T, results []Result, status Status) {
	t.Helper()
	for _, result := range results {
		if result.Status == status {
			t.Fatalf("unexpected %s result: %#v", status, result)
		}
	}
}
