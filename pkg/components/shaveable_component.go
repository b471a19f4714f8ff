package components

// ShaveableComponent 标记实体可以被剃刀移除
// 移除是永久的，不支持撤销
type ShaveableComponent struct{}
