package repository

// 更新系の結果（件数だけ返す）
type WriteResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// 削除の結果
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
