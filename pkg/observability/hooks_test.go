package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	i := NoopInstallHooks{}
	i.OnResolveStart(ctx, "requests", "2.31.0")
	i.OnResolveComplete(ctx, "requests", "2.31.0", "https://files.example/requests.whl", time.Second, nil)
	i.OnDownloadStart(ctx, "https://files.example/requests.whl")
	i.OnDownloadComplete(ctx, "https://files.example/requests.whl", 1024, time.Second, nil)
	i.OnInstallComplete(ctx, "requests-2.31.0-py3-none-any.whl", "/tmp/wheels/requests.whl", time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "index")
	c.OnCacheMiss(ctx, "index")
	c.OnCacheSet(ctx, "index", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Install().(NoopInstallHooks); !ok {
		t.Error("Install() should return NoopInstallHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customInstall := &testInstallHooks{}
	SetInstallHooks(customInstall)
	if Install() != customInstall {
		t.Error("SetInstallHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Install().(NoopInstallHooks); !ok {
		t.Error("Reset() should restore NoopInstallHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testInstallHooks{}
	SetInstallHooks(custom)

	SetInstallHooks(nil)

	if Install() != custom {
		t.Error("SetInstallHooks(nil) should be ignored")
	}

	Reset()
}

type testInstallHooks struct {
	NoopInstallHooks
	resolves int
}

func (h *testInstallHooks) OnResolveStart(context.Context, string, string) { h.resolves++ }

type testCacheHooks struct {
	NoopCacheHooks
	hits int
}

func (h *testCacheHooks) OnCacheHit(context.Context, string) { h.hits++ }
