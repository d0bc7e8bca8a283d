package domain

const (
	ToolListTopAssets = "get_all_coin_prices"
	ToolAssetByID     = "get_coin_price_by_id"
)

type SelectionKind int

const (
	SelectNone SelectionKind = iota
	SelectListTopAssets
	SelectAssetByID
)

func (k SelectionKind) String() string {
	switch k {
	case SelectListTopAssets:
		return "list_top_assets"
	case SelectAssetByID:
		return "asset_by_id"
	default:
		return "none"
	}
}

// Selection - решение классификатора: никакого инструмента, список топа или запись по id
type Selection struct {
	Kind    SelectionKind
	AssetID string
	Reply   string // только для SelectNone
}

func NoTool(reply string) Selection {
	return Selection{Kind: SelectNone, Reply: reply}
}

func ListTopAssets() Selection {
	return Selection{Kind: SelectListTopAssets}
}

func AssetByID(id string) Selection {
	return Selection{Kind: SelectAssetByID, AssetID: id}
}

func (s Selection) ToolName() string {
	switch s.Kind {
	case SelectListTopAssets:
		return ToolListTopAssets
	case SelectAssetByID:
		return ToolAssetByID
	default:
		return ""
	}
}

func (s Selection) Args() map[string]string {
	if s.Kind == SelectAssetByID {
		return map[string]string{"id": s.AssetID}
	}
	return nil
}
