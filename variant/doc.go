/*Package variant holds the annotation record shared by variant and genotype
  calls: a phred-convertible error estimate, the set of filters the call
  failed, and an open-ended key/value attribute bag.

  The record guards its own invariants eagerly.  Scores outside the legal
  domain, duplicate filters, and silent attribute overwrites are rejected at
  the point of mutation; nothing is queued or downgraded.  Records start out
  sharing a single empty attribute map so that corpora with millions of
  unannotated calls pay nothing until a record is actually annotated.

  Records are not internally synchronized.  Mutate from a single owner,
  typically during construction, then treat as read-mostly.
*/
package variant
