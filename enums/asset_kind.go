package enums

type AssetKind string

const (
	AssetKindDescription AssetKind = "description"
	AssetKindInput       AssetKind = "input"
	AssetKindSample      AssetKind = "sample"
	AssetKindAnswer      AssetKind = "answer"
)
