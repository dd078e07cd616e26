// Package kubectl shells out to the cluster CLI. The delete-and-confirm
// flow deliberately goes through the CLI rather than the typed client: a
// "get" exit code is the same signal the suite's operators use by hand, and
// it covers resource types the typed clientset has no interface for.
package kubectl
