package jwt

import (
	"errors"
	"testing"
	"time"

	"class-routine/backend/config"
)

func testManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:               "test-secret-key-0123456789",
		AccessTokenTTL:          15 * time.Minute,
		RefreshTokenTTLDefault:  24 * time.Hour,
		RefreshTokenTTLRemember: 168 * time.Hour,
	})
}

func TestManager_AccessTokenRoundTrip(t *testing.T) {
	m := testManager()

	token, err := m.GenerateAccessToken("u-001", "teacher", "T1")
	if err != nil {
		t.Fatalf("生成 access token 失败: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("解析 access token 失败: %v", err)
	}
	if claims.UserID != "u-001" {
		t.Errorf("期望 UserID=u-001，实际=%s", claims.UserID)
	}
	if claims.Role != "teacher" || claims.TeacherID != "T1" {
		t.Errorf("声明应携带查看者上下文，实际 role=%s teacher_id=%s", claims.Role, claims.TeacherID)
	}
	if claims.TokenType != "access" {
		t.Errorf("期望 TokenType=access，实际=%s", claims.TokenType)
	}
	if claims.ID == "" {
		t.Error("jti 不应为空（黑名单按 jti 寻址）")
	}
}

func TestManager_RefreshTokenCarriesRememberMe(t *testing.T) {
	m := testManager()

	token, err := m.GenerateRefreshToken("u-001", "admin", "", true)
	if err != nil {
		t.Fatalf("生成 refresh token 失败: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("解析 refresh token 失败: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("期望 TokenType=refresh，实际=%s", claims.TokenType)
	}
	if !claims.RememberMe {
		t.Error("remember_me 声明应保留")
	}
}

func TestManager_RejectsWrongSecret(t *testing.T) {
	m := testManager()
	other := NewManager(&config.AuthConfig{
		JWTSecret:      "another-secret-key-987654321",
		AccessTokenTTL: 15 * time.Minute,
	})

	token, err := other.GenerateAccessToken("u-001", "admin", "")
	if err != nil {
		t.Fatalf("生成 token 失败: %v", err)
	}

	if _, err := m.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("期望 ErrTokenInvalid，实际: %v", err)
	}
}

func TestManager_RejectsExpired(t *testing.T) {
	m := NewManager(&config.AuthConfig{
		JWTSecret:      "test-secret-key-0123456789",
		AccessTokenTTL: -time.Minute, // 签发即过期
	})

	token, err := m.GenerateAccessToken("u-001", "admin", "")
	if err != nil {
		t.Fatalf("生成 token 失败: %v", err)
	}

	if _, err := m.ParseToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("期望 ErrTokenExpired，实际: %v", err)
	}
}

func TestManager_RejectsGarbage(t *testing.T) {
	m := testManager()
	if _, err := m.ParseToken("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("期望 ErrTokenInvalid，实际: %v", err)
	}
}
