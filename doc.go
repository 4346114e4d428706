/*
quadpipe solves batches of quadratic equations with a concurrent producer/consumer pipeline.

The input is a flat list of tokens, read by groups of three coefficients (a, b, c). The list is split into buckets, and
each bucket is handled by two goroutines running side by side:

- a producer parses the bucket tokens, reports malformed or incomplete groups, and hands valid triples over a
HandoffQueue, which it closes once its range is exhausted;
- a consumer drains the queue and formats the roots and the extremum of each triple.

Both tasks write through their own LineBuffer, which batches lines and flushes them into a Sink shared by every task.
The Sink serializes whole flushes, so lines are never interleaved or cut, while goroutines only contend on it once per
buffer rather than once per line.

Within a bucket, results come out in input order since the queue is FIFO and the bucket has a single consumer. Between
buckets there is no ordering: the output of a bucket may come before or after the output of any other.

The bucket count is derived once from the available parallelism (see NewPlan) and all the tasks run in a fixed size
pool, launched up front and joined at the end of Run. There is no cancellation: every task runs to completion.

The numeric side (parsing, solving and formatting) lives in the equation package.
*/

package quadpipe
