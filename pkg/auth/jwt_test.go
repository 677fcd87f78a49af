package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestJWTService(t *testing.T, secret string) *JWTService {
	t.Helper()
	svc, err := NewJWTService(JWTConfig{
		Secret:     secret,
		Issuer:     "finbooks-test",
		Expiration: 15 * time.Minute,
	})
	if err != nil {
		t.Fatalf("NewJWTService() error = %v", err)
	}
	return svc
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(t, "test-secret-key-for-unit-tests")
	userID := uuid.New()
	tenantID := uuid.New()
	roles := []string{RoleAdmin, RoleBookkeeper}

	tokenString, err := svc.GenerateToken(userID, tenantID, roles)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if tokenString == "" {
		t.Fatal("GenerateToken() returned empty token")
	}

	claims, err := svc.ValidateToken(tokenString)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.TenantID != tenantID {
		t.Errorf("TenantID = %v, want %v", claims.TenantID, tenantID)
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != RoleAdmin || claims.Roles[1] != RoleBookkeeper {
		t.Errorf("Roles = %v, want [%s %s]", claims.Roles, RoleAdmin, RoleBookkeeper)
	}
	if claims.Issuer != "finbooks-test" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "finbooks-test")
	}
	if claims.Subject != userID.String() {
		t.Errorf("Subject = %q, want %q", claims.Subject, userID.String())
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		Issuer:     "finbooks-test",
		Expiration: -1 * time.Hour, // already expired
	})
	if err != nil {
		t.Fatalf("NewJWTService() error = %v", err)
	}

	tokenString, err := svc.GenerateToken(uuid.New(), uuid.New(), []string{RoleAPIClient})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := svc.ValidateToken(tokenString); err == nil {
		t.Fatal("ValidateToken() expected error for expired token, got nil")
	}
}

func TestValidateToken_InvalidSignature(t *testing.T) {
	svc1 := newTestJWTService(t, "secret-one")
	svc2 := newTestJWTService(t, "secret-two")

	tokenString, err := svc1.GenerateToken(uuid.New(), uuid.New(), []string{RoleAPIClient})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := svc2.ValidateToken(tokenString); err == nil {
		t.Fatal("ValidateToken() expected error for invalid signature, got nil")
	}
}

func TestNewJWTService_NoKeyMaterial(t *testing.T) {
	if _, err := NewJWTService(JWTConfig{Issuer: "finbooks-test"}); err == nil {
		t.Fatal("NewJWTService() expected error without key material, got nil")
	}
}

func TestHasRole(t *testing.T) {
	claims := Claims{
		Roles: []string{RoleAdmin, RoleAuditor},
	}

	if !claims.HasRole(RoleAdmin) {
		t.Error("HasRole(RoleAdmin) = false, want true")
	}
	if !claims.HasRole(RoleAuditor) {
		t.Error("HasRole(RoleAuditor) = false, want true")
	}
	if claims.HasRole(RoleBookkeeper) {
		t.Error("HasRole(RoleBookkeeper) = true, want false")
	}
}

func TestClaimsFromContext(t *testing.T) {
	ctx := context.Background()
	if _, ok := ClaimsFromContext(ctx); ok {
		t.Error("ClaimsFromContext() ok = true for empty context, want false")
	}

	expected := &Claims{
		UserID:   uuid.New(),
		TenantID: uuid.New(),
		Roles:    []string{RoleBookkeeper},
	}
	ctx = ContextWithClaims(ctx, expected)
	got, ok := ClaimsFromContext(ctx)
	if !ok {
		t.Fatal("ClaimsFromContext() ok = false, want true")
	}
	if got.UserID != expected.UserID {
		t.Errorf("UserID = %v, want %v", got.UserID, expected.UserID)
	}
	if got.TenantID != expected.TenantID {
		t.Errorf("TenantID = %v, want %v", got.TenantID, expected.TenantID)
	}
}
