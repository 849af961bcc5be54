/*Package interval defines the coordinate contract shared by everything in
  this toolkit that maps onto a reference sequence: variant records,
  alignments, query regions.  Coordinates are 1-based and closed at both
  ends, matching SAM/VCF convention; an empty contig name means the object
  is unmapped and never overlaps or contains anything.

  The contract is a small capability interface (Locatable) plus free
  functions that derive size, overlap, and containment from it, so any
  coordinate-bearing type can adopt it without wrapping or embedding.
*/
package interval
