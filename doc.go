// Package k8st provides test support for validating a Kubernetes networking
// plugin against a live cluster.
//
// A Suite is created once per run: it takes an exclusive lock on the target
// cluster, pins the node daemon set to the expected image, and hands out
// per-test TestContexts. Each TestContext owns a fresh cluster handle and
// exposes creation helpers (namespaces, deployments, services), a
// pod-status check, structural diffing of expected vs. actual state, JSON
// artifact output, banner logging, and delete-with-confirmation through the
// cluster CLI.
//
// # Basic Usage
//
//	import "github.com/projectcalico/k8st"
//
//	ctx := context.Background()
//
//	suite, err := k8st.NewSuite()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer suite.Close()
//
//	if err := suite.EnsureNodeImage(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Per test:
//	tc := suite.NewContext()
//	if err := tc.SetUp(); err != nil {
//	    log.Fatal(err)
//	}
//	tc.LogBanner("creating workload %s", "web")
//	if err := tc.CreateService(ctx, "nginx:latest", "web", "test-ns", 80); err != nil {
//	    log.Fatal(err)
//	}
//	defer tc.DeleteAndConfirm(ctx, "ns", "test-ns")
//
// Credentials come from the KUBECONFIG environment variable or the client
// library's default resolution; WithKubeconfig overrides both.
//
// # What the helpers do not do
//
// Creation helpers return as soon as the API accepts the resource; they do
// not wait for pods to schedule or become ready. CreateService followed
// immediately by CheckPodStatus may legitimately fail. Readiness waiting is
// the caller's job, via WaitForPodsRunning.
package k8st
