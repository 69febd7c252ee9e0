package clipboard

// DetectWith is Detect with a custom PATH lookup.
var DetectWith = detect
