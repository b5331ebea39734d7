// Package cache provides a small TTL cache with singleflight request
// coalescing.
//
// Services use it to cache ordered listings per parent and invalidate on
// mutation. The singleflight group guarantees that a cold key is loaded
// exactly once no matter how many requests race for it; there is no
// lock-polling or sleep-based mutual exclusion anywhere.
package cache
