// Package retry provides bounded retry and polling loops for cloud API calls.
//
// [Do] retries an operation with configurable max attempts, initial delay and
// backoff; errors wrapped with [Fatal] stop it immediately. It drives the
// CIDR bump-and-retry loop of subnet creation.
//
// [PollUntil] is the single readiness loop used for virtual networks, subnets
// and mount targets. It sleeps between fetches and returns a [TimeoutError]
// (matching [ErrTimeout]) once the attempt budget is spent.
package retry
