package domain

import "testing"

func TestAllowed_RetireRequiresAdmin(t *testing.T) {
	for _, kind := range []ResourceKind{KindAccount, KindCategory, KindProduct} {
		if Allowed(RoleUser, OpRetire, kind) {
			t.Errorf("USER must not retire %s", kind)
		}
		if !Allowed(RoleAdmin, OpRetire, kind) {
			t.Errorf("ADMIN must retire %s", kind)
		}
	}
}

func TestAllowed_AccountMutationsRequireAdmin(t *testing.T) {
	for _, op := range []Operation{OpCreate, OpUpdate} {
		if Allowed(RoleUser, op, KindAccount) {
			t.Errorf("USER must not %s accounts", op)
		}
		if !Allowed(RoleAdmin, op, KindAccount) {
			t.Errorf("ADMIN must %s accounts", op)
		}
	}
}

func TestAllowed_AuthenticatedOperations(t *testing.T) {
	cases := []struct {
		op   Operation
		kind ResourceKind
	}{
		{OpRead, KindAccount},
		{OpRead, KindCategory},
		{OpCreate, KindCategory},
		{OpUpdate, KindCategory},
		{OpRead, KindProduct},
		{OpCreate, KindProduct},
		{OpUpdate, KindProduct},
	}
	for _, tc := range cases {
		if !Allowed(RoleUser, tc.op, tc.kind) {
			t.Errorf("USER should %s %s", tc.op, tc.kind)
		}
	}
}

func TestAllowed_EmptyRoleDenied(t *testing.T) {
	if Allowed("", OpRead, KindProduct) {
		t.Error("empty role must be denied")
	}
}

func TestAuthorize_ReturnsForbidden(t *testing.T) {
	err := Authorize(Principal{AccountID: "a1", Role: RoleUser}, OpRetire, KindCategory)
	if err != ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := Authorize(Principal{AccountID: "a1", Role: RoleAdmin}, OpRetire, KindCategory); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
