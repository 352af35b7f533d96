package commands

import (
	"fmt"

	"github.com/jfrog/build-info-go/entities"
	buildUtils "github.com/jfrog/jfrog-cli-core/v2/common/build"
	"github.com/jfrog/jfrog-client-go/utils/errorutils"
	"github.com/jfrog/jfrog-client-go/utils/log"
	"github.com/miner-utils/hf-uploader/checkpoint"
)

const huggingFaceModuleType = entities.ModuleType("huggingface")

// collectBuildInfo records the uploaded checkpoint files as artifacts of a module named after the repository.
// The build info is saved locally, to be published later with 'jf rt bp'.
func collectBuildInfo(buildConfiguration *buildUtils.BuildConfiguration, repoId string, files []checkpoint.FileDetails) error {
	if buildConfiguration == nil {
		return nil
	}
	isCollectBuildInfo, err := buildConfiguration.IsCollectBuildInfo()
	if err != nil {
		return errorutils.CheckError(err)
	}
	if !isCollectBuildInfo {
		return nil
	}
	buildName, err := buildConfiguration.GetBuildName()
	if err != nil {
		return errorutils.CheckError(err)
	}
	buildNumber, err := buildConfiguration.GetBuildNumber()
	if err != nil {
		return errorutils.CheckError(err)
	}
	project := buildConfiguration.GetProject()
	buildInfoService := buildUtils.CreateBuildInfoService()
	build, err := buildInfoService.GetOrCreateBuildWithProject(buildName, buildNumber, project)
	if err != nil {
		return fmt.Errorf("failed to create build info: %w", err)
	}
	buildInfo, err := build.ToBuildInfo()
	if err != nil {
		return fmt.Errorf("failed to build info: %w", err)
	}
	buildInfo.Modules = append(buildInfo.Modules, entities.Module{
		Type:      huggingFaceModuleType,
		Id:        repoId,
		Artifacts: toArtifacts(repoId, files),
	})
	if err = buildUtils.SaveBuildInfo(buildName, buildNumber, project, buildInfo); err != nil {
		return errorutils.CheckErrorf("failed to save build info for '%s/%s': %s", buildName, buildNumber, err.Error())
	}
	log.Info(fmt.Sprintf("Build info saved locally. Use 'jf rt bp %s %s' to publish it to Artifactory.", buildName, buildNumber))
	return nil
}

func toArtifacts(repoId string, files []checkpoint.FileDetails) []entities.Artifact {
	artifacts := make([]entities.Artifact, 0, len(files))
	for _, file := range files {
		artifacts = append(artifacts, entities.Artifact{
			Name: file.Name,
			Path: repoId + "/" + file.Name,
			Checksum: entities.Checksum{
				Sha1:   file.Sha1,
				Md5:    file.Md5,
				Sha256: file.Sha256,
			},
		})
	}
	return artifacts
}
