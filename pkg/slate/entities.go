package slate

import "time"

// Project represents one production on the server.
type Project struct {
	Name         string        `json:"name"                   yaml:"name"`
	Code         string        `json:"code,omitempty"         yaml:"code,omitempty"`
	Active       bool          `json:"active"                 yaml:"active"`
	Library      bool          `json:"library,omitempty"      yaml:"library,omitempty"`
	FolderTypes  []TypeEntry   `json:"folderTypes,omitempty"  yaml:"folderTypes,omitempty"`
	TaskTypes    []TypeEntry   `json:"taskTypes,omitempty"    yaml:"taskTypes,omitempty"`
	ProductTypes []TypeEntry   `json:"productTypes,omitempty" yaml:"productTypes,omitempty"`
	Statuses     []StatusEntry `json:"statuses,omitempty"     yaml:"statuses,omitempty"`
	Tags         []string      `json:"tags,omitempty"         yaml:"tags,omitempty"`
	Config       DataMap       `json:"config,omitempty"       yaml:"config,omitempty"`
	Attrib       DataMap       `json:"attrib,omitempty"       yaml:"attrib,omitempty"`
	Data         DataMap       `json:"data,omitempty"         yaml:"data,omitempty"`
	CreatedAt    time.Time     `json:"createdAt,omitempty"    yaml:"createdAt,omitempty"`
	UpdatedAt    time.Time     `json:"updatedAt,omitempty"    yaml:"updatedAt,omitempty"`
}

// Folder represents one node of a project's content hierarchy.
type Folder struct {
	ID          string    `json:"id"                    yaml:"id"`
	Name        string    `json:"name"                  yaml:"name"`
	Label       string    `json:"label,omitempty"       yaml:"label,omitempty"`
	FolderType  string    `json:"folderType,omitempty"  yaml:"folderType,omitempty"`
	Path        string    `json:"path,omitempty"        yaml:"path,omitempty"`
	ParentID    string    `json:"parentId,omitempty"    yaml:"parentId,omitempty"`
	Active      bool      `json:"active"                yaml:"active"`
	ThumbnailID string    `json:"thumbnailId,omitempty" yaml:"thumbnailId,omitempty"`
	Status      string    `json:"status,omitempty"      yaml:"status,omitempty"`
	Tags        []string  `json:"tags,omitempty"        yaml:"tags,omitempty"`
	Attrib      DataMap   `json:"attrib,omitempty"      yaml:"attrib,omitempty"`
	Data        DataMap   `json:"data,omitempty"        yaml:"data,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"   yaml:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"   yaml:"updatedAt,omitempty"`
}

// Task represents one unit of work assigned under a folder.
type Task struct {
	ID          string    `json:"id"                    yaml:"id"`
	Name        string    `json:"name"                  yaml:"name"`
	Label       string    `json:"label,omitempty"       yaml:"label,omitempty"`
	TaskType    string    `json:"taskType,omitempty"    yaml:"taskType,omitempty"`
	FolderID    string    `json:"folderId,omitempty"    yaml:"folderId,omitempty"`
	Assignees   []string  `json:"assignees,omitempty"   yaml:"assignees,omitempty"`
	Active      bool      `json:"active"                yaml:"active"`
	ThumbnailID string    `json:"thumbnailId,omitempty" yaml:"thumbnailId,omitempty"`
	Status      string    `json:"status,omitempty"      yaml:"status,omitempty"`
	Tags        []string  `json:"tags,omitempty"        yaml:"tags,omitempty"`
	Attrib      DataMap   `json:"attrib,omitempty"      yaml:"attrib,omitempty"`
	Data        DataMap   `json:"data,omitempty"        yaml:"data,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"   yaml:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"   yaml:"updatedAt,omitempty"`
}

// Product represents one publishable output slot of a folder.
type Product struct {
	ID          string    `json:"id"                    yaml:"id"`
	Name        string    `json:"name"                  yaml:"name"`
	ProductType string    `json:"productType,omitempty" yaml:"productType,omitempty"`
	FolderID    string    `json:"folderId,omitempty"    yaml:"folderId,omitempty"`
	Active      bool      `json:"active"                yaml:"active"`
	Status      string    `json:"status,omitempty"      yaml:"status,omitempty"`
	Tags        []string  `json:"tags,omitempty"        yaml:"tags,omitempty"`
	Attrib      DataMap   `json:"attrib,omitempty"      yaml:"attrib,omitempty"`
	Data        DataMap   `json:"data,omitempty"        yaml:"data,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"   yaml:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"   yaml:"updatedAt,omitempty"`
}

// Version represents one published version of a product.
type Version struct {
	ID          string    `json:"id"                    yaml:"id"`
	Name        string    `json:"name,omitempty"        yaml:"name,omitempty"`
	Version     int       `json:"version"               yaml:"version"`
	ProductID   string    `json:"productId,omitempty"   yaml:"productId,omitempty"`
	TaskID      string    `json:"taskId,omitempty"      yaml:"taskId,omitempty"`
	Author      string    `json:"author,omitempty"      yaml:"author,omitempty"`
	Active      bool      `json:"active"                yaml:"active"`
	ThumbnailID string    `json:"thumbnailId,omitempty" yaml:"thumbnailId,omitempty"`
	Status      string    `json:"status,omitempty"      yaml:"status,omitempty"`
	Tags        []string  `json:"tags,omitempty"        yaml:"tags,omitempty"`
	Attrib      DataMap   `json:"attrib,omitempty"      yaml:"attrib,omitempty"`
	Data        DataMap   `json:"data,omitempty"        yaml:"data,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"   yaml:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"   yaml:"updatedAt,omitempty"`
}

// Representation represents one concrete file set of a version.
type Representation struct {
	ID        string               `json:"id"                  yaml:"id"`
	Name      string               `json:"name"                yaml:"name"`
	VersionID string               `json:"versionId,omitempty" yaml:"versionId,omitempty"`
	Active    bool                 `json:"active"              yaml:"active"`
	Status    string               `json:"status,omitempty"    yaml:"status,omitempty"`
	Tags      []string             `json:"tags,omitempty"      yaml:"tags,omitempty"`
	Files     []RepresentationFile `json:"files,omitempty"     yaml:"files,omitempty"`
	Context   DataMap              `json:"context,omitempty"   yaml:"context,omitempty"`
	Attrib    DataMap              `json:"attrib,omitempty"    yaml:"attrib,omitempty"`
	Data      DataMap              `json:"data,omitempty"      yaml:"data,omitempty"`
	CreatedAt time.Time            `json:"createdAt,omitempty" yaml:"createdAt,omitempty"`
	UpdatedAt time.Time            `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// RepresentationFile describes one file of a representation.
type RepresentationFile struct {
	ID       string `json:"id"                 yaml:"id"`
	Name     string `json:"name,omitempty"     yaml:"name,omitempty"`
	Path     string `json:"path"               yaml:"path"`
	Size     int64  `json:"size,omitempty"     yaml:"size,omitempty"`
	Hash     string `json:"hash,omitempty"     yaml:"hash,omitempty"`
	HashType string `json:"hashType,omitempty" yaml:"hashType,omitempty"`
}

// RepresentationParents bundles the entities a representation hangs under.
type RepresentationParents struct {
	Version *Version `json:"version" yaml:"version"`
	Product *Product `json:"product" yaml:"product"`
	Folder  *Folder  `json:"folder"  yaml:"folder"`
	Project *Project `json:"project" yaml:"project"`
}

// Workfile represents one working file registered for a task.
type Workfile struct {
	ID          string    `json:"id"                    yaml:"id"`
	Path        string    `json:"path"                  yaml:"path"`
	Name        string    `json:"name,omitempty"        yaml:"name,omitempty"`
	ProjectName string    `json:"projectName,omitempty" yaml:"projectName,omitempty"`
	TaskID      string    `json:"taskId,omitempty"      yaml:"taskId,omitempty"`
	ThumbnailID string    `json:"thumbnailId,omitempty" yaml:"thumbnailId,omitempty"`
	CreatedBy   string    `json:"createdBy,omitempty"   yaml:"createdBy,omitempty"`
	UpdatedBy   string    `json:"updatedBy,omitempty"   yaml:"updatedBy,omitempty"`
	Active      bool      `json:"active"                yaml:"active"`
	Status      string    `json:"status,omitempty"      yaml:"status,omitempty"`
	Tags        []string  `json:"tags,omitempty"        yaml:"tags,omitempty"`
	Attrib      DataMap   `json:"attrib,omitempty"      yaml:"attrib,omitempty"`
	Data        DataMap   `json:"data,omitempty"        yaml:"data,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"   yaml:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"   yaml:"updatedAt,omitempty"`
}

// User represents one user account.
type User struct {
	Name                string    `json:"name"                          yaml:"name"`
	Active              bool      `json:"active"                        yaml:"active"`
	IsAdmin             bool      `json:"isAdmin,omitempty"             yaml:"isAdmin,omitempty"`
	IsManager           bool      `json:"isManager,omitempty"           yaml:"isManager,omitempty"`
	IsService           bool      `json:"isService,omitempty"           yaml:"isService,omitempty"`
	IsGuest             bool      `json:"isGuest,omitempty"             yaml:"isGuest,omitempty"`
	HasPassword         bool      `json:"hasPassword,omitempty"         yaml:"hasPassword,omitempty"`
	APIKeyPreview       string    `json:"apiKeyPreview,omitempty"       yaml:"apiKeyPreview,omitempty"`
	AccessGroups        DataMap   `json:"accessGroups,omitempty"        yaml:"accessGroups,omitempty"`
	DefaultAccessGroups []string  `json:"defaultAccessGroups,omitempty" yaml:"defaultAccessGroups,omitempty"`
	Attrib              DataMap   `json:"attrib,omitempty"              yaml:"attrib,omitempty"`
	CreatedAt           time.Time `json:"createdAt,omitempty"           yaml:"createdAt,omitempty"`
	UpdatedAt           time.Time `json:"updatedAt,omitempty"           yaml:"updatedAt,omitempty"`
}

// Event represents one entry of the server event log.
type Event struct {
	ID          string    `json:"id"                    yaml:"id"`
	Hash        string    `json:"hash,omitempty"        yaml:"hash,omitempty"`
	Topic       string    `json:"topic"                 yaml:"topic"`
	Project     string    `json:"project,omitempty"     yaml:"project,omitempty"`
	User        string    `json:"user,omitempty"        yaml:"user,omitempty"`
	Sender      string    `json:"sender,omitempty"      yaml:"sender,omitempty"`
	DependsOn   string    `json:"dependsOn,omitempty"   yaml:"dependsOn,omitempty"`
	Status      string    `json:"status,omitempty"      yaml:"status,omitempty"`
	RetryCount  int       `json:"retries,omitempty"     yaml:"retries,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Summary     DataMap   `json:"summary,omitempty"     yaml:"summary,omitempty"`
	Payload     DataMap   `json:"payload,omitempty"     yaml:"payload,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"   yaml:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"   yaml:"updatedAt,omitempty"`
}

// Activity represents one feed entry (comment, status change, version
// publish) attached to an entity.
type Activity struct {
	ID           string          `json:"activityId"              yaml:"activityId"`
	ActivityType string          `json:"activityType"            yaml:"activityType"`
	Body         string          `json:"body,omitempty"          yaml:"body,omitempty"`
	EntityID     string          `json:"entityId,omitempty"      yaml:"entityId,omitempty"`
	EntityType   string          `json:"entityType,omitempty"    yaml:"entityType,omitempty"`
	Author       *ActivityAuthor `json:"author,omitempty"        yaml:"author,omitempty"`
	Data         DataMap         `json:"activityData,omitempty"  yaml:"activityData,omitempty"`
	CreatedAt    time.Time       `json:"createdAt,omitempty"     yaml:"createdAt,omitempty"`
	UpdatedAt    time.Time       `json:"updatedAt,omitempty"     yaml:"updatedAt,omitempty"`
}

// ActivityAuthor identifies the user an activity originates from.
type ActivityAuthor struct {
	Name string `json:"name" yaml:"name"`
}
